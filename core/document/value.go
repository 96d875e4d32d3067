package document

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the shape name used in type-mismatch reports.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a decoded JSON document. The variant set is closed:
// every Value is exactly one of Object, List, String, Number, Bool or Null.
type Value interface {
	Kind() Kind
}

// Object is a JSON object (string keys, arbitrary values).
type Object map[string]Value

// List is a JSON array.
type List []Value

// String is a JSON string.
type String string

// Number is a JSON number. Integers and floats are not distinguished,
// matching the single number type of JSON itself.
type Number float64

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null value.
type Null struct{}

func (Object) Kind() Kind { return KindObject }
func (List) Kind() Kind   { return KindList }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

// Decode parses raw JSON bytes into the Value model.
func Decode(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromAny(raw), nil
}

// fromAny converts the generic encoding/json representation into Value.
// encoding/json only ever produces the types switched on here.
func fromAny(raw any) Value {
	switch v := raw.(type) {
	case map[string]any:
		obj := make(Object, len(v))
		for key, val := range v {
			obj[key] = fromAny(val)
		}
		return obj
	case []any:
		list := make(List, 0, len(v))
		for _, val := range v {
			list = append(list, fromAny(val))
		}
		return list
	case string:
		return String(v)
	case float64:
		return Number(v)
	case bool:
		return Bool(v)
	default:
		return Null{}
	}
}

// Canonical renders a Value as compact JSON with object keys sorted.
// Two values are structurally equal iff their canonical forms are equal,
// which makes the rendering usable as a multiset element and map key.
func Canonical(v Value) string {
	var b strings.Builder
	appendCanonical(&b, v)
	return b.String()
}

func appendCanonical(b *strings.Builder, v Value) {
	switch val := v.(type) {
	case Object:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			appendQuoted(b, k)
			b.WriteByte(':')
			appendCanonical(b, val[k])
		}
		b.WriteByte('}')
	case List:
		b.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			appendCanonical(b, item)
		}
		b.WriteByte(']')
	case String:
		appendQuoted(b, string(val))
	case Number:
		b.WriteString(formatNumber(float64(val)))
	case Bool:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	default:
		b.WriteString("null")
	}
}

// appendQuoted writes s as a JSON string literal without HTML escaping.
func appendQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u`)
				hex := strconv.FormatInt(int64(r), 16)
				for len(hex) < 4 {
					hex = "0" + hex
				}
				b.WriteString(hex)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// formatNumber renders a JSON number the way encoding/json does: plain
// decimal notation unless the magnitude forces an exponent, so 1000000
// stays "1000000" and never becomes "1e+06" in cells or keyed paths.
func formatNumber(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	out := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// Trim a zero-padded exponent: e+09 -> e+9.
		if n := len(out); n >= 4 && out[n-4] == 'e' && out[n-2] == '0' {
			out = out[:n-2] + out[n-1:]
		}
	}
	return out
}

// Display renders a Value for use inside report paths and scalar mismatch
// cells: strings are unquoted, everything else uses the canonical form.
func Display(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return Canonical(v)
}
