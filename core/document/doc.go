// Package document models the JSON response documents captured from each
// environment and prepares them for comparison.
//
// The package provides three things:
//
// 1. Value model: a closed set of variants (Object, List, String, Number,
//    Bool, Null) decoded from raw JSON. Every component downstream
//    pattern-matches over these variants instead of inspecting runtime types,
//    and the canonical rendering (sorted object keys) is total over the model.
//
// 2. Loading: Load parses a capture file and enforces the one structural
//    requirement the pipeline has: the top-level value must be an array of
//    entries. Anything else is a *ParseError, which the CLI maps to exit
//    code 2.
//
// 3. Indexing: each entry is keyed by the applicant's first and last name and
//    reduced to its comparison scope (the nested report object, or the whole
//    entry). The resulting Index preserves document order so discrepancy
//    output is deterministic across runs.
//
// # Usage Example
//
//	entries, err := document.Load("az1.json")
//	idx := document.BuildIndex(entries, document.ScopeReport)
//	for _, key := range idx.Keys() {
//	    scoped, _ := idx.Get(key)
//	    ...
//	}
package document
