package compare

import (
	"unicode/utf8"

	"lpcr-compare/core/document"
)

// summarize renders a value for a report cell: canonical JSON, truncated
// with an ellipsis marker when it exceeds the configured cap. A nil value
// (the absent side of a presence discrepancy) renders as "null".
func (c *comparer) summarize(v document.Value) string {
	if v == nil {
		return "null"
	}
	s := document.Canonical(v)
	if len(s) > c.maxLen {
		cut := c.maxLen - 3
		// Never split a multibyte rune; the cell must stay valid UTF-8.
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
