package document

// Scope selects how much of each entry is compared.
type Scope string

const (
	// ScopeReport compares only the nested report object
	// (response.body[0].report) of each entry.
	ScopeReport Scope = "report"
	// ScopeFull compares the entire entry.
	ScopeFull Scope = "full"
)

// Valid reports whether s is a recognized scope.
func (s Scope) Valid() bool {
	return s == ScopeReport || s == ScopeFull
}

// UnknownIdentity is the sentinel key for entries with no resolvable
// applicant name in either the primary or fallback location.
const UnknownIdentity = "UNKNOWN_UNKNOWN"

// IdentityKey derives the cross-environment matching key for an entry:
// firstName + "_" + lastName from the top-level applicant object, falling
// back to the applicant inside the report when the top-level one is absent.
func IdentityKey(entry Value) string {
	if key, ok := applicantName(entry, "applicant"); ok {
		return key
	}
	if report, ok := reportOf(entry); ok {
		if key, ok := applicantName(report, "applicant"); ok {
			return key
		}
	}
	return UnknownIdentity
}

// applicantName extracts "first_last" from parent[field], requiring both
// name fields to be present.
func applicantName(parent Value, field string) (string, bool) {
	obj, ok := parent.(Object)
	if !ok {
		return "", false
	}
	applicant, ok := obj[field].(Object)
	if !ok {
		return "", false
	}
	first, ok := applicant["firstName"]
	if !ok {
		return "", false
	}
	last, ok := applicant["lastName"]
	if !ok {
		return "", false
	}
	return Display(first) + "_" + Display(last), true
}

// reportOf walks entry.response.body[0].report.
func reportOf(entry Value) (Value, bool) {
	obj, ok := entry.(Object)
	if !ok {
		return nil, false
	}
	response, ok := obj["response"].(Object)
	if !ok {
		return nil, false
	}
	body, ok := response["body"].(List)
	if !ok || len(body) == 0 {
		return nil, false
	}
	first, ok := body[0].(Object)
	if !ok {
		return nil, false
	}
	report, ok := first["report"]
	if !ok {
		return nil, false
	}
	return report, true
}

// ExtractScope reduces an entry to its comparison scope. A missing or
// malformed report path degrades to an empty object rather than an error,
// so shape irregularities surface as discrepancies instead of crashes.
func ExtractScope(entry Value, scope Scope) Value {
	if scope == ScopeFull {
		return entry
	}
	if report, ok := reportOf(entry); ok {
		return report
	}
	return Object{}
}

// Index maps identity keys to scoped entry values while preserving the
// order in which keys first appeared in the document.
type Index struct {
	keys    []string
	entries map[string]Value
}

// BuildIndex indexes entries by identity key under the given scope.
// A duplicate identity within one document overwrites the earlier value but
// keeps its original position (last write wins).
func BuildIndex(entries []Value, scope Scope) *Index {
	idx := &Index{entries: make(map[string]Value, len(entries))}
	for _, entry := range entries {
		key := IdentityKey(entry)
		if _, seen := idx.entries[key]; !seen {
			idx.keys = append(idx.keys, key)
		}
		idx.entries[key] = ExtractScope(entry, scope)
	}
	return idx
}

// Keys returns the identity keys in document order.
func (ix *Index) Keys() []string { return ix.keys }

// Get returns the scoped value for an identity key.
func (ix *Index) Get(key string) (Value, bool) {
	v, ok := ix.entries[key]
	return v, ok
}

// Len returns the number of distinct identities.
func (ix *Index) Len() int { return len(ix.keys) }
