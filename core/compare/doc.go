// Package compare implements the structural reconciliation engine that
// diffs two captured response documents under relaxed equivalence: list
// order never matters, and lists of business records are matched by a
// domain key instead of position.
//
// # Architecture
//
// The engine consists of three cooperating parts:
//
// 1. Document walk: Documents pairs entries across the two environments by
//    identity key (env A order first, then env-B-only identities) and runs a
//    deep structural comparison for each pair.
//
// 2. Deep comparison: a recursive walk over the value model, checked in
//    priority order — variant mismatch, object (sorted union of keys), list
//    (delegated to the list reconciler), scalar equality.
//
// 3. List reconciler: lists of objects are matched element-by-element on a
//    detected key field (accountNumber for tradelines/collections, code for
//    model factors) and recursed into; lists without a reliable key are
//    compared as order-insensitive multisets of canonical renderings.
//
// Every divergence is appended to an ordered sink as a Discrepancy with an
// identity, a kind from a closed taxonomy, a structural path and bounded
// textual summaries of both sides. The engine performs no I/O and never
// mutates its inputs; the same inputs always produce the same discrepancy
// sequence.
package compare
