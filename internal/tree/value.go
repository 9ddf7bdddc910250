package tree

import (
	"sort"
	"strings"
)

// Value is a node of the configuration tree: either a Scalar or a Section.
type Value interface {
	isValue()
}

// Scalar is a leaf holding the trimmed value text.
type Scalar string

// Section maps a single key segment to a child value.
type Section map[string]Value

func (Scalar) isValue()  {}
func (Section) isValue() {}

// KeySeparator splits dotted keys into path segments.
const KeySeparator = "."

// SplitKey splits a dotted key into its segments. Empty segments are kept
// as literal empty keys, so "a..b" yields ["a", "", "b"].
func SplitKey(key string) []string {
	return strings.Split(key, KeySeparator)
}

// Get returns the child stored under a single segment.
func (s Section) Get(segment string) (Value, bool) {
	v, ok := s[segment]
	return v, ok
}

// Lookup returns the value at a dotted key.
func (s Section) Lookup(key string) (Value, bool) {
	return s.LookupPath(SplitKey(key))
}

// LookupPath returns the value at the given segment path.
// An empty path returns the section itself.
func (s Section) LookupPath(path []string) (Value, bool) {
	var current Value = s
	for _, segment := range path {
		section, ok := current.(Section)
		if !ok {
			return nil, false
		}
		current, ok = section.Get(segment)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Keys returns the section's keys in sorted order.
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Leaf is a Scalar together with its full segment path.
type Leaf struct {
	Path  []string
	Value Scalar
}

// Key joins the leaf path back into a dotted key.
func (l Leaf) Key() string {
	return strings.Join(l.Path, KeySeparator)
}

// Leaves returns every Scalar under the section, depth first in key order.
func (s Section) Leaves() []Leaf {
	var leaves []Leaf
	s.walk(nil, func(path []string, v Scalar) {
		leaves = append(leaves, Leaf{Path: append([]string(nil), path...), Value: v})
	})
	return leaves
}

func (s Section) walk(prefix []string, fn func([]string, Scalar)) {
	for _, k := range s.Keys() {
		path := append(prefix[:len(prefix):len(prefix)], k)
		switch v := s[k].(type) {
		case Scalar:
			fn(path, v)
		case Section:
			v.walk(path, fn)
		}
	}
}

// Equal reports whether two values have the same structure and content.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Scalar:
		bv, ok := b.(Scalar)
		return ok && av == bv
	case Section:
		bv, ok := b.(Section)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, child := range av {
			other, ok := bv[k]
			if !ok || !Equal(child, other) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
