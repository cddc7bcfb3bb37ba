package content

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/doctordigital/drdigital/contentful"
)

// Kind tags what a field value holds.
type Kind int

const (
	KindMissing Kind = iota
	KindScalar
	KindLink   // unresolved reference stub
	KindEntry  // resolved linked entry
	KindAsset  // resolved asset
	KindObject // plain nested object, e.g. an asset's file details
	KindList
)

// Value is a field value of a CMS entry. The zero Value is missing.
type Value struct {
	kind Kind
	raw  any
}

func wrap(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case *contentful.Entry:
		if t == nil {
			return Value{}
		}
		return Value{kind: KindEntry, raw: t}
	case *contentful.Asset:
		if t == nil {
			return Value{}
		}
		return Value{kind: KindAsset, raw: t}
	case contentful.Link:
		return Value{kind: KindLink, raw: t}
	case map[string]any:
		return Value{kind: KindObject, raw: t}
	case []any:
		return Value{kind: KindList, raw: t}
	default:
		return Value{kind: KindScalar, raw: t}
	}
}

// Lookup walks path through fields. Resolved entries and assets are
// traversed through their fields; a missing segment, a scalar in the middle
// of the path or an unresolved link yields a missing value instead of
// panicking.
func Lookup(fields map[string]any, path ...string) Value {
	if fields == nil {
		return Value{}
	}
	cur := Value{kind: KindObject, raw: fields}
	for _, seg := range path {
		cur = cur.Get(seg)
		if cur.kind == KindMissing {
			return cur
		}
	}
	return cur
}

// Get returns the named child of an entry, asset or object.
func (v Value) Get(name string) Value {
	var m map[string]any
	switch v.kind {
	case KindEntry:
		m = v.raw.(*contentful.Entry).Fields
	case KindAsset:
		m = v.raw.(*contentful.Asset).Fields
	case KindObject:
		m = v.raw.(map[string]any)
	default:
		return Value{}
	}
	child, ok := m[name]
	if !ok {
		return Value{}
	}
	return wrap(child)
}

// Kind reports what the value holds.
func (v Value) Kind() Kind { return v.kind }

// Present reports whether the value exists at all.
func (v Value) Present() bool { return v.kind != KindMissing }

// String returns a string scalar, or "" for anything else.
func (v Value) String() string {
	if v.kind != KindScalar {
		return ""
	}
	s, _ := v.raw.(string)
	return s
}

// Float returns a numeric scalar. Numeric strings are accepted.
func (v Value) Float() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	switch n := v.raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// Entry returns the resolved entry, or nil.
func (v Value) Entry() *contentful.Entry {
	if v.kind != KindEntry {
		return nil
	}
	return v.raw.(*contentful.Entry)
}

// Asset returns the resolved asset, or nil.
func (v Value) Asset() *contentful.Asset {
	if v.kind != KindAsset {
		return nil
	}
	return v.raw.(*contentful.Asset)
}

// Link returns the unresolved link stub.
func (v Value) Link() (contentful.Link, bool) {
	l, ok := v.raw.(contentful.Link)
	return l, ok && v.kind == KindLink
}

// List returns the elements of a list value.
func (v Value) List() []Value {
	if v.kind != KindList {
		return nil
	}
	raw := v.raw.([]any)
	out := make([]Value, len(raw))
	for i, e := range raw {
		out[i] = wrap(e)
	}
	return out
}

// Strings returns the string elements of a list value.
func (v Value) Strings() []string {
	var out []string
	for _, e := range v.List() {
		if s := strings.TrimSpace(e.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Raw returns the underlying decoded value.
func (v Value) Raw() any { return v.raw }
