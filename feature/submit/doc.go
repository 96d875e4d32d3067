// Package submit implements the report submission workflow: it posts each
// applicant from an input file to the LPCR service of a chosen environment,
// sequentially, and collects the responses into the capture document that
// the compare engine later consumes.
//
// Each request carries a bearer token, the environment's Host header and a
// per-run correlation id. Transient failures are retried with exponential
// backoff; a request that still fails after all retries is recorded in the
// output with its error instead of aborting the run, so one bad applicant
// never loses the rest of the capture.
package submit
