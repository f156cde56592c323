// Package jsontree provides a read-only JSON document tree with safe
// nested lookups. Unlike a decoded map[string]any it preserves object key
// order, and every accessor on a missing or mistyped node returns an
// invalid Value instead of panicking, so deep descent chains degrade
// gracefully on partial documents.
package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind discriminates JSON node types. The zero value is Invalid, which is
// what lookups on absent paths return.
type Kind int

const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

// Value is one node of a parsed JSON document.
type Value struct {
	kind   Kind
	str    string
	num    float64
	b      bool
	keys   []string
	fields map[string]Value
	items  []Value
}

// Parse decodes a full JSON document into a Value tree.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseNext(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("jsontree: trailing data after document")
	}
	return v, nil
}

func parseNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return Value{}, fmt.Errorf("jsontree: unexpected delimiter %q", t.String())
	case string:
		return Value{kind: String, str: t}, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Value{kind: Number, str: t.String(), num: f}, nil
	case bool:
		return Value{kind: Bool, b: t}, nil
	case nil:
		return Value{kind: Null}, nil
	}
	return Value{}, fmt.Errorf("jsontree: unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	v := Value{kind: Object, fields: make(map[string]Value)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsontree: object key is not a string: %v", keyTok)
		}
		child, err := parseNext(dec)
		if err != nil {
			return Value{}, err
		}
		if _, seen := v.fields[key]; !seen {
			v.keys = append(v.keys, key)
		}
		v.fields[key] = child
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	v := Value{kind: Array}
	for dec.More() {
		child, err := parseNext(dec)
		if err != nil {
			return Value{}, err
		}
		v.items = append(v.items, child)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Kind reports the node type; Invalid for lookups that missed.
func (v Value) Kind() Kind {
	return v.kind
}

// Exists reports whether the value is a real node of the document.
func (v Value) Exists() bool {
	return v.kind != Invalid
}

// Field returns the named member of an object, or an invalid Value when
// the node is not an object or the key is absent.
func (v Value) Field(name string) Value {
	if v.kind != Object {
		return Value{}
	}
	return v.fields[name]
}

// Index returns the i-th element of an array, or an invalid Value when
// out of range or not an array.
func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return Value{}
	}
	return v.items[i]
}

// Keys returns object keys in document order. Nil for non-objects.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Len returns the element count for arrays and the member count for
// objects, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.keys)
	default:
		return 0
	}
}

// StringOr returns the string content, or def for non-strings.
func (v Value) StringOr(def string) string {
	if v.kind != String {
		return def
	}
	return v.str
}

// IntOr returns the numeric content truncated to int, or def for
// non-numbers.
func (v Value) IntOr(def int) int {
	if v.kind != Number {
		return def
	}
	return int(v.num)
}

// BoolOr returns the boolean content, or def for non-booleans.
func (v Value) BoolOr(def bool) bool {
	if v.kind != Bool {
		return def
	}
	return v.b
}
