package document

import (
	"fmt"
	"os"
)

// ParseError reports a capture file that could not be read or whose shape
// does not match the expected top-level array of entries.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying cause, nil for pure shape violations.
	Err error
	// Reason describes the shape violation when Err is nil.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a capture file and returns its entries.
// The top-level JSON value must be an array; any read, decode or shape
// failure is returned as a *ParseError.
func Load(path string) ([]Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	root, err := Decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	list, ok := root.(List)
	if !ok {
		return nil, &ParseError{Path: path, Reason: "top-level value is not a JSON array of entries"}
	}
	return []Value(list), nil
}
