// Package report serializes discrepancy sequences into the CSV report
// consumed downstream. Rows are written verbatim in sink order under a
// fixed five-column header; the writer adds no aggregation or dedup.
package report
