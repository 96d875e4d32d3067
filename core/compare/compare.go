package compare

import (
	"sort"

	"lpcr-compare/core/document"
)

// entryPath is the pseudo-path used for whole-entry presence discrepancies.
const entryPath = "(applicant)"

// Documents compares two indexed documents and returns every discrepancy in
// discovery order: identities from environment A first (in document order),
// then identities present only in environment B.
func Documents(envA, envB *document.Index, opts Options) []Discrepancy {
	c := newComparer(opts)

	for _, identity := range envA.Keys() {
		aVal, _ := envA.Get(identity)
		bVal, ok := envB.Get(identity)
		if !ok {
			c.emit(identity, KindMissingInEnvB, entryPath, c.summarize(aVal), c.summarize(nil))
			continue
		}
		c.deep(identity, aVal, bVal, "")
	}

	for _, identity := range envB.Keys() {
		if _, ok := envA.Get(identity); ok {
			continue
		}
		bVal, _ := envB.Get(identity)
		c.emit(identity, KindMissingInEnvA, entryPath, c.summarize(nil), c.summarize(bVal))
	}

	return c.diffs
}

// comparer accumulates discrepancies during one comparison run.
// The sink is append-only and the inputs are never mutated.
type comparer struct {
	maxLen int
	diffs  []Discrepancy
}

func newComparer(opts Options) *comparer {
	maxLen := opts.SummaryMaxLen
	// Caps below the ellipsis length cannot hold any content.
	if maxLen < 4 {
		maxLen = DefaultSummaryMaxLen
	}
	return &comparer{maxLen: maxLen, diffs: []Discrepancy{}}
}

func (c *comparer) emit(identity string, kind Kind, path, envA, envB string) {
	c.diffs = append(c.diffs, Discrepancy{
		Applicant: identity,
		Kind:      kind,
		Path:      path,
		EnvAValue: envA,
		EnvBValue: envB,
	})
}

// deep recursively compares two values of the same logical position.
// Checks run in priority order: variant mismatch, object, list, scalar.
func (c *comparer) deep(identity string, a, b document.Value, path string) {
	if a.Kind() != b.Kind() {
		c.emit(identity, KindTypeMismatch, path, a.Kind().String(), b.Kind().String())
		return
	}

	switch av := a.(type) {
	case document.Object:
		c.deepObject(identity, av, b.(document.Object), path)
	case document.List:
		c.lists(identity, av, b.(document.List), path)
	default:
		if !scalarEqual(a, b) {
			c.emit(identity, KindValueMismatch, path, document.Display(a), document.Display(b))
		}
	}
}

// deepObject visits the union of keys from both sides in lexicographic
// order, reporting one-sided keys and recursing into shared ones.
func (c *comparer) deepObject(identity string, a, b document.Object, path string) {
	keys := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
		seen[k] = struct{}{}
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		subPath := joinPath(path, k)
		aVal, inA := a[k]
		bVal, inB := b[k]
		switch {
		case !inA:
			c.emit(identity, KindMissingInEnvA, subPath, c.summarize(nil), c.summarize(bVal))
		case !inB:
			c.emit(identity, KindMissingInEnvB, subPath, c.summarize(aVal), c.summarize(nil))
		default:
			c.deep(identity, aVal, bVal, subPath)
		}
	}
}

// joinPath extends a dotted path; an empty parent yields the bare key.
func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// scalarEqual compares two scalar values of the same variant.
func scalarEqual(a, b document.Value) bool {
	switch av := a.(type) {
	case document.String:
		return av == b.(document.String)
	case document.Number:
		return av == b.(document.Number)
	case document.Bool:
		return av == b.(document.Bool)
	default:
		// Null: only one value inhabits the variant.
		return true
	}
}
