package localization

import (
	"fmt"
	"maps"
	"strings"
)

// Table maps string keys to the values of a single language. Values are
// either text leaves or nested groups, so a Table describes an arbitrarily
// nested tree of translations.
type Table map[string]Value

// Value is a single node of a string table: a text leaf or a nested group of
// keyed values. The zero value is an empty text leaf.
type Value struct {
	group Table
	text  string
	kind  valueKind
}

type valueKind uint8

const (
	kindText valueKind = iota
	kindGroup
)

// Text creates a leaf value holding literal text.
func Text(s string) Value {
	return Value{text: s}
}

// Group creates a nested group value. The entries map is copied, so later
// mutation of the argument does not affect the value.
func Group(entries Table) Value {
	return Value{kind: kindGroup, group: maps.Clone(entries)}
}

// IsGroup reports whether the value is a nested group rather than a text leaf.
func (v Value) IsGroup() bool {
	return v.kind == kindGroup
}

// Text returns the literal text of a leaf value. It returns the empty string
// for group values.
func (v Value) Text() string {
	return v.text
}

// Group returns a copy of the entries of a group value, or nil for leaves.
func (v Value) Group() Table {
	if v.kind != kindGroup {
		return nil
	}
	return maps.Clone(v.group)
}

// lookup resolves a key against the table. A literal key match wins;
// otherwise the key is treated as a dotted path descending through nested
// groups ("greet.morning").
func (t Table) lookup(key string) (Value, bool) {
	if v, ok := t[key]; ok {
		return v, true
	}
	head, rest, nested := strings.Cut(key, ".")
	if !nested {
		return Value{}, false
	}
	v, ok := t[head]
	if !ok || v.kind != kindGroup {
		return Value{}, false
	}
	return v.group.lookup(rest)
}

// tableFromMap converts a caller-supplied nested map into a Table. Strings
// become text leaves, nested maps become groups, and any other scalar is
// rendered with fmt. This is the single boundary where untyped translation
// data enters the package.
func tableFromMap(data map[string]any) Table {
	table := make(Table, len(data))
	for key, raw := range data {
		table[key] = valueFromAny(raw)
	}
	return table
}

func valueFromAny(raw any) Value {
	switch v := raw.(type) {
	case string:
		return Text(v)
	case Value:
		return v
	case Table:
		return Value{kind: kindGroup, group: maps.Clone(v)}
	case map[string]any:
		return Value{kind: kindGroup, group: tableFromMap(v)}
	case map[string]string:
		group := make(Table, len(v))
		for key, text := range v {
			group[key] = Text(text)
		}
		return Value{kind: kindGroup, group: group}
	default:
		return Text(fmt.Sprintf("%v", v))
	}
}
