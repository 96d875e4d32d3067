package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentityKey_TopLevelApplicant tests the primary identity location.
func TestIdentityKey_TopLevelApplicant(t *testing.T) {
	entry := decode(t, `{"applicant":{"firstName":"Jane","lastName":"Doe","ssn":"123"}}`)
	assert.Equal(t, "Jane_Doe", IdentityKey(entry))
}

// TestIdentityKey_ReportFallback tests the nested fallback location when the
// top-level applicant is absent or incomplete.
func TestIdentityKey_ReportFallback(t *testing.T) {
	entry := decode(t, `{
		"applicant": {"firstName": "Jane"},
		"response": {"body": [{"report": {"applicant": {"firstName": "John", "lastName": "Smith"}}}]}
	}`)
	assert.Equal(t, "John_Smith", IdentityKey(entry))
}

// TestIdentityKey_Unknown tests the sentinel for entries with no applicant.
func TestIdentityKey_Unknown(t *testing.T) {
	assert.Equal(t, UnknownIdentity, IdentityKey(decode(t, `{"other":1}`)))
	assert.Equal(t, UnknownIdentity, IdentityKey(decode(t, `"not an object"`)))
}

// TestExtractScope tests report extraction and the empty-object fallback.
func TestExtractScope(t *testing.T) {
	entry := decode(t, `{"response":{"body":[{"report":{"score":700}}]},"extra":1}`)

	report := ExtractScope(entry, ScopeReport)
	assert.Equal(t, `{"score":700}`, Canonical(report))

	full := ExtractScope(entry, ScopeFull)
	assert.Equal(t, entry, full)

	// Missing report path degrades to an empty object, never an error.
	degraded := ExtractScope(decode(t, `{"response":{"body":[]}}`), ScopeReport)
	assert.Equal(t, `{}`, Canonical(degraded))
}

// TestScope_Valid tests scope validation.
func TestScope_Valid(t *testing.T) {
	assert.True(t, ScopeReport.Valid())
	assert.True(t, ScopeFull.Valid())
	assert.False(t, Scope("everything").Valid())
}

// TestBuildIndex_DocumentOrder tests that keys keep document order.
func TestBuildIndex_DocumentOrder(t *testing.T) {
	entries := listEntries(t, `[
		{"applicant":{"firstName":"B","lastName":"B"}},
		{"applicant":{"firstName":"A","lastName":"A"}},
		{"applicant":{"firstName":"C","lastName":"C"}}
	]`)

	idx := BuildIndex(entries, ScopeFull)
	assert.Equal(t, []string{"B_B", "A_A", "C_C"}, idx.Keys())
	assert.Equal(t, 3, idx.Len())
}

// TestBuildIndex_LastWriteWins tests that a duplicate identity overwrites
// the earlier entry but keeps its original position.
func TestBuildIndex_LastWriteWins(t *testing.T) {
	entries := listEntries(t, `[
		{"applicant":{"firstName":"Jane","lastName":"Doe"},"v":1},
		{"applicant":{"firstName":"Bob","lastName":"Ray"},"v":2},
		{"applicant":{"firstName":"Jane","lastName":"Doe"},"v":3}
	]`)

	idx := BuildIndex(entries, ScopeFull)
	assert.Equal(t, []string{"Jane_Doe", "Bob_Ray"}, idx.Keys())

	v, ok := idx.Get("Jane_Doe")
	require.True(t, ok)
	obj, ok := v.(Object)
	require.True(t, ok)
	assert.Equal(t, Number(3), obj["v"])
}

func listEntries(t *testing.T, raw string) []Value {
	t.Helper()
	v := decode(t, raw)
	list, ok := v.(List)
	require.True(t, ok)
	return []Value(list)
}
