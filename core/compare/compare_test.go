package compare

import (
	"fmt"
	"testing"

	"lpcr-compare/core/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entry composes one capture entry with the given applicant name and report
// body, matching the shape the submit workflow produces.
func entry(first, last, reportJSON string) string {
	return fmt.Sprintf(
		`{"applicant":{"firstName":%q,"lastName":%q},"response":{"body":[{"report":%s}]}}`,
		first, last, reportJSON,
	)
}

// indexOf decodes a raw JSON array of entries and indexes it.
func indexOf(t *testing.T, raw string, scope document.Scope) *document.Index {
	t.Helper()
	v, err := document.Decode([]byte(raw))
	require.NoError(t, err)
	list, ok := v.(document.List)
	require.True(t, ok)
	return document.BuildIndex([]document.Value(list), scope)
}

// reports builds a one-applicant document per report body, for focused
// pairwise comparisons.
func reports(t *testing.T, reportJSON string) *document.Index {
	t.Helper()
	return indexOf(t, "["+entry("Jane", "Doe", reportJSON)+"]", document.ScopeReport)
}

// TestDocuments_SelfComparisonIsEmpty tests that comparing a document with
// itself yields no discrepancies.
func TestDocuments_SelfComparisonIsEmpty(t *testing.T) {
	raw := "[" + entry("Jane", "Doe", `{
		"score": 700,
		"tradeLines": [{"accountNumber": "A1", "balance": 100}, {"accountNumber": "A2", "balance": 0}],
		"model": {"factors": [{"code": 12, "description": "history"}]},
		"notes": ["x", "y", null, true]
	}`) + "]"

	a := indexOf(t, raw, document.ScopeReport)
	b := indexOf(t, raw, document.ScopeReport)

	assert.Empty(t, Documents(a, b, Options{}))
}

// TestDocuments_ScalarMismatch tests the single-discrepancy scalar scenario.
func TestDocuments_ScalarMismatch(t *testing.T) {
	a := reports(t, `{"score": 700}`)
	b := reports(t, `{"score": 710}`)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 1)
	assert.Equal(t, Discrepancy{
		Applicant: "Jane_Doe",
		Kind:      KindValueMismatch,
		Path:      "score",
		EnvAValue: "700",
		EnvBValue: "710",
	}, diffs[0])
}

// TestDocuments_MissingTradeline tests keyed-list absence reporting.
func TestDocuments_MissingTradeline(t *testing.T) {
	a := reports(t, `{"tradeLines": [{"accountNumber": "A1", "balance": 100}]}`)
	b := reports(t, `{"tradeLines": []}`)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 1)
	assert.Equal(t, Discrepancy{
		Applicant: "Jane_Doe",
		Kind:      KindMissingInEnvB,
		Path:      "tradeLines[accountNumber=A1]",
		EnvAValue: `{"accountNumber":"A1","balance":100}`,
		EnvBValue: "null",
	}, diffs[0])
}

// TestDocuments_ApplicantPresence tests whole-entry presence discrepancies:
// no nested comparison happens for one-sided applicants.
func TestDocuments_ApplicantPresence(t *testing.T) {
	a := indexOf(t, "["+
		entry("Jane", "Doe", `{"score": 700}`)+","+
		entry("John", "Smith", `{"score": 650, "tradeLines": [{"accountNumber": "A1"}]}`)+
		"]", document.ScopeReport)
	b := indexOf(t, "["+
		entry("Jane", "Doe", `{"score": 700}`)+","+
		entry("Extra", "Person", `{"score": 800}`)+
		"]", document.ScopeReport)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 2)

	assert.Equal(t, "John_Smith", diffs[0].Applicant)
	assert.Equal(t, KindMissingInEnvB, diffs[0].Kind)
	assert.Equal(t, "(applicant)", diffs[0].Path)
	assert.Equal(t, "null", diffs[0].EnvBValue)

	assert.Equal(t, "Extra_Person", diffs[1].Applicant)
	assert.Equal(t, KindMissingInEnvA, diffs[1].Kind)
	assert.Equal(t, "(applicant)", diffs[1].Path)
	assert.Equal(t, "null", diffs[1].EnvAValue)
}

// TestDocuments_UnkeyedListReorder tests that permuting an unkeyed list
// produces no discrepancies.
func TestDocuments_UnkeyedListReorder(t *testing.T) {
	a := reports(t, `{"notes": ["x", "y"]}`)
	b := reports(t, `{"notes": ["y", "x"]}`)

	assert.Empty(t, Documents(a, b, Options{}))
}

// TestDocuments_UnkeyedListMismatch tests that unequal unkeyed lists report
// one whole-list discrepancy, respecting duplicate counts.
func TestDocuments_UnkeyedListMismatch(t *testing.T) {
	a := reports(t, `{"notes": ["x", "x", "y"]}`)
	b := reports(t, `{"notes": ["x", "y", "y"]}`)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 1)
	assert.Equal(t, KindListMismatch, diffs[0].Kind)
	assert.Equal(t, "notes", diffs[0].Path)
	assert.Equal(t, `["x","x","y"]`, diffs[0].EnvAValue)
	assert.Equal(t, `["x","y","y"]`, diffs[0].EnvBValue)
}

// TestDocuments_KeyedListPermutation tests that keyed-list findings do not
// depend on element order on either side.
func TestDocuments_KeyedListPermutation(t *testing.T) {
	a := reports(t, `{"tradeLines": [
		{"accountNumber": "A1", "balance": 100},
		{"accountNumber": "A2", "balance": 50}
	]}`)
	b := reports(t, `{"tradeLines": [
		{"accountNumber": "A2", "balance": 75},
		{"accountNumber": "A1", "balance": 100}
	]}`)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 1)
	assert.Equal(t, Discrepancy{
		Applicant: "Jane_Doe",
		Kind:      KindValueMismatch,
		Path:      "tradeLines[accountNumber=A2].balance",
		EnvAValue: "50",
		EnvBValue: "75",
	}, diffs[0])
}

// TestDocuments_KeyedListUnkeyedRemainder tests that elements lacking the
// key field are reconciled separately as one multiset remainder.
func TestDocuments_KeyedListUnkeyedRemainder(t *testing.T) {
	a := reports(t, `{"tradeLines": [{"accountNumber": "A1"}, {"note": "x"}]}`)
	b := reports(t, `{"tradeLines": [{"accountNumber": "A1"}, {"note": "y"}]}`)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 1)
	assert.Equal(t, KindListUnkeyedMismatch, diffs[0].Kind)
	assert.Equal(t, "tradeLines[* no-accountNumber items]", diffs[0].Path)
	assert.Equal(t, `[{"note":"x"}]`, diffs[0].EnvAValue)
	assert.Equal(t, `[{"note":"y"}]`, diffs[0].EnvBValue)
}

// TestDocuments_KeyedListDuplicateKey tests last-write-wins on repeated key
// values within one list.
func TestDocuments_KeyedListDuplicateKey(t *testing.T) {
	a := reports(t, `{"tradeLines": [
		{"accountNumber": "A1", "balance": 1},
		{"accountNumber": "A1", "balance": 2}
	]}`)
	b := reports(t, `{"tradeLines": [{"accountNumber": "A1", "balance": 2}]}`)

	assert.Empty(t, Documents(a, b, Options{}))
}

// TestDocuments_TypeMismatch tests that differing variants stop recursion.
func TestDocuments_TypeMismatch(t *testing.T) {
	a := reports(t, `{"score": 700}`)
	b := reports(t, `{"score": "700"}`)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 1)
	assert.Equal(t, KindTypeMismatch, diffs[0].Kind)
	assert.Equal(t, "score", diffs[0].Path)
	assert.Equal(t, "number", diffs[0].EnvAValue)
	assert.Equal(t, "string", diffs[0].EnvBValue)
}

// TestDocuments_ObjectKeyUnion tests one-sided object keys, visited in
// lexicographic order with dotted paths.
func TestDocuments_ObjectKeyUnion(t *testing.T) {
	a := reports(t, `{"nested": {"a": 1, "b": 2}}`)
	b := reports(t, `{"nested": {"b": 2, "c": 3}}`)

	diffs := Documents(a, b, Options{})
	require.Len(t, diffs, 2)

	assert.Equal(t, KindMissingInEnvB, diffs[0].Kind)
	assert.Equal(t, "nested.a", diffs[0].Path)
	assert.Equal(t, "1", diffs[0].EnvAValue)

	assert.Equal(t, KindMissingInEnvA, diffs[1].Kind)
	assert.Equal(t, "nested.c", diffs[1].Path)
	assert.Equal(t, "3", diffs[1].EnvBValue)
}

// TestDocuments_Deterministic tests that repeated runs yield byte-identical
// discrepancy sequences.
func TestDocuments_Deterministic(t *testing.T) {
	rawA := "[" + entry("Jane", "Doe", `{
		"score": 700,
		"tradeLines": [{"accountNumber": "A1", "balance": 100}, {"accountNumber": "A3"}],
		"model": {"factors": [{"code": 4, "description": "util"}]},
		"notes": ["x"]
	}`) + "," + entry("Only", "EnvA", `{"score": 1}`) + "]"
	rawB := "[" + entry("Jane", "Doe", `{
		"score": 710,
		"tradeLines": [{"accountNumber": "A2", "balance": 100}],
		"model": {"factors": [{"code": 4, "description": "utilization"}]},
		"notes": ["y"]
	}`) + "," + entry("Only", "EnvB", `{"score": 2}`) + "]"

	first := Documents(indexOf(t, rawA, document.ScopeReport), indexOf(t, rawB, document.ScopeReport), Options{})
	second := Documents(indexOf(t, rawA, document.ScopeReport), indexOf(t, rawB, document.ScopeReport), Options{})

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

// TestDocuments_HeterogeneousList tests that mixed-shape lists fall back to
// multiset comparison instead of keyed matching.
func TestDocuments_HeterogeneousList(t *testing.T) {
	a := reports(t, `{"items": [{"accountNumber": "A1"}, "stray"]}`)
	b := reports(t, `{"items": ["stray", {"accountNumber": "A1"}]}`)

	assert.Empty(t, Documents(a, b, Options{}))
}
