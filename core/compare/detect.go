package compare

import (
	"strings"

	"lpcr-compare/core/document"
)

// Key fields known to identify business records.
const (
	fieldAccountNumber = "accountNumber"
	fieldCode          = "code"
)

// pathHint maps a path substring to the key field its records are known to
// carry. Hints are checked in order and dominate the frequency heuristic.
type pathHint struct {
	substring string
	field     string
}

var pathHints = []pathHint{
	{"tradeLines", fieldAccountNumber},
	{"collections", fieldAccountNumber},
	{"factors", fieldCode},
}

// detectKeyField decides which field, if any, reliably identifies the
// elements of a keyed list pair. Explicit path hints win; otherwise the
// field present on more elements across both lists is chosen, with ties
// going to accountNumber. Empty string means no reliable key exists.
func detectKeyField(path string, a, b document.List) string {
	for _, hint := range pathHints {
		if strings.Contains(path, hint.substring) {
			return hint.field
		}
	}

	accountCount := countField(a, fieldAccountNumber) + countField(b, fieldAccountNumber)
	codeCount := countField(a, fieldCode) + countField(b, fieldCode)
	if accountCount >= codeCount && accountCount > 0 {
		return fieldAccountNumber
	}
	if codeCount > 0 {
		return fieldCode
	}
	return ""
}

// countField counts list elements that carry the given field.
func countField(items document.List, field string) int {
	n := 0
	for _, item := range items {
		if obj, ok := item.(document.Object); ok {
			if _, has := obj[field]; has {
				n++
			}
		}
	}
	return n
}
