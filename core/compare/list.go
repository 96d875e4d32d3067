package compare

import (
	"fmt"
	"sort"

	"lpcr-compare/core/document"
)

// lists reconciles two lists. Lists made entirely of objects with a
// detectable key field are matched per element on that key and recursed
// into; everything else is compared as an order-insensitive multiset.
func (c *comparer) lists(identity string, a, b document.List, path string) {
	if allObjects(a) && allObjects(b) {
		if keyField := detectKeyField(path, a, b); keyField != "" {
			c.keyedLists(identity, a, b, path, keyField)
			return
		}
	}

	if !multisetEqual(a, b) {
		c.emit(identity, KindListMismatch, path, c.summarize(a), c.summarize(b))
	}
}

// keyedLists matches elements on keyField and compares them pairwise.
// Elements lacking the key field are excluded from the keyed mapping and
// reconciled separately as one multiset remainder.
func (c *comparer) keyedLists(identity string, a, b document.List, path, keyField string) {
	aMap := mapByKey(a, keyField)
	bMap := mapByKey(b, keyField)

	for _, key := range unionKeys(a, b, keyField) {
		subPath := fmt.Sprintf("%s[%s=%s]", path, keyField, key.display)
		aVal, inA := aMap[key.canonical]
		bVal, inB := bMap[key.canonical]
		switch {
		case !inA:
			c.emit(identity, KindMissingInEnvA, subPath, c.summarize(nil), c.summarize(bVal))
		case !inB:
			c.emit(identity, KindMissingInEnvB, subPath, c.summarize(aVal), c.summarize(nil))
		default:
			c.deep(identity, aVal, bVal, subPath)
		}
	}

	aRest := withoutKey(a, keyField)
	bRest := withoutKey(b, keyField)
	if len(aRest) == 0 && len(bRest) == 0 {
		return
	}
	if !multisetEqual(aRest, bRest) {
		restPath := fmt.Sprintf("%s[* no-%s items]", path, keyField)
		c.emit(identity, KindListUnkeyedMismatch, restPath, c.summarize(aRest), c.summarize(bRest))
	}
}

// listKey orders and labels one key value of a keyed list. Keys are mapped
// by canonical form so a number 1 and a string "1" stay distinct.
type listKey struct {
	kind      string
	display   string
	canonical string
}

// mapByKey indexes list elements by the canonical form of their key field.
// A repeated key value keeps the later element (last write wins).
func mapByKey(items document.List, keyField string) map[string]document.Value {
	m := make(map[string]document.Value)
	for _, item := range items {
		obj, ok := item.(document.Object)
		if !ok {
			continue
		}
		key, ok := obj[keyField]
		if !ok {
			continue
		}
		m[document.Canonical(key)] = item
	}
	return m
}

// withoutKey returns the elements that would be excluded from the keyed
// mapping because they lack the key field.
func withoutKey(items document.List, keyField string) document.List {
	rest := document.List{}
	for _, item := range items {
		if obj, ok := item.(document.Object); ok {
			if _, has := obj[keyField]; has {
				continue
			}
		}
		rest = append(rest, item)
	}
	return rest
}

// keyOf labels one key value for ordering and path rendering.
func keyOf(v document.Value) listKey {
	return listKey{
		kind:      v.Kind().String(),
		display:   document.Display(v),
		canonical: document.Canonical(v),
	}
}

// unionKeys returns the distinct key values from both lists, ordered by a
// stable total order over mixed key types: variant name first, then textual
// form. This avoids any cross-type comparison.
func unionKeys(a, b document.List, keyField string) []listKey {
	seen := make(map[string]struct{})
	keys := []listKey{}
	for _, list := range []document.List{a, b} {
		for _, item := range list {
			obj, ok := item.(document.Object)
			if !ok {
				continue
			}
			keyVal, ok := obj[keyField]
			if !ok {
				continue
			}
			key := keyOf(keyVal)
			if _, dup := seen[key.canonical]; dup {
				continue
			}
			seen[key.canonical] = struct{}{}
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].kind != keys[j].kind {
			return keys[i].kind < keys[j].kind
		}
		return keys[i].display < keys[j].display
	})
	return keys
}

// allObjects reports whether every element of the list is an object.
// Vacuously true for empty lists.
func allObjects(items document.List) bool {
	for _, item := range items {
		if _, ok := item.(document.Object); !ok {
			return false
		}
	}
	return true
}

// multisetEqual compares two lists ignoring order but respecting duplicate
// counts, using canonical renderings as element identity.
func multisetEqual(a, b document.List) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, item := range a {
		counts[document.Canonical(item)]++
	}
	for _, item := range b {
		counts[document.Canonical(item)]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
