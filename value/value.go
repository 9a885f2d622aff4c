package value

import (
	"encoding/json"
	"maps"
	"slices"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value variants. The zero Value is Null.
const (
	Null Kind = iota
	Bool
	Number
	String
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is an immutable parsed document node.
type Value struct {
	kind  Kind
	flag  bool
	num   float64
	str   string
	items []Value
	keyed map[string]Value
}

// NullValue returns the Null variant.
func NullValue() Value {
	return Value{}
}

// BoolValue wraps b.
func BoolValue(b bool) Value {
	return Value{kind: Bool, flag: b}
}

// NumberValue wraps n.
func NumberValue(n float64) Value {
	return Value{kind: Number, num: n}
}

// StringValue wraps s.
func StringValue(s string) Value {
	return Value{kind: String, str: s}
}

// SequenceValue builds a Sequence from items. The slice is copied.
func SequenceValue(items ...Value) Value {
	return Value{kind: Sequence, items: slices.Clone(items)}
}

// MappingValue builds a Mapping from entries. The map is copied.
func MappingValue(entries map[string]Value) Value {
	keyed := make(map[string]Value, len(entries))
	maps.Copy(keyed, entries)

	return Value{kind: Mapping, keyed: keyed}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// AsBool returns the boolean and true if v is a Bool.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == Bool
}

// AsNumber returns the number and true if v is a Number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == Number
}

// AsString returns the string and true if v is a String.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == String
}

// Items returns a copy of the elements of a Sequence, or nil for other variants.
func (v Value) Items() []Value {
	if v.kind != Sequence {
		return nil
	}

	return slices.Clone(v.items)
}

// Len returns the number of elements of a Sequence or entries of a Mapping.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.items)
	case Mapping:
		return len(v.keyed)
	default:
		return 0
	}
}

// Lookup returns the value mapped to key. It is only defined for Mapping values;
// every other variant reports false.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}

	found, ok := v.keyed[key]

	return found, ok
}

// Keys returns the sorted keys of a Mapping, or nil for other variants.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}

	return slices.Sorted(maps.Keys(v.keyed))
}

// Equal reports deep equality of two values.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.flag == other.flag
	case Number:
		return v.num == other.num
	case String:
		return v.str == other.str
	case Sequence:
		return slices.EqualFunc(v.items, other.items, Value.Equal)
	case Mapping:
		return maps.EqualFunc(v.keyed, other.keyed, Value.Equal)
	default:
		return false
	}
}

// Native converts v into plain Go values: nil, bool, float64, string, []any and map[string]any.
func (v Value) Native() any {
	switch v.kind {
	case Bool:
		return v.flag
	case Number:
		return v.num
	case String:
		return v.str
	case Sequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Native()
		}

		return out
	case Mapping:
		out := make(map[string]any, len(v.keyed))
		for key, item := range v.keyed {
			out[key] = item.Native()
		}

		return out
	default:
		return nil
	}
}

// MarshalJSON encodes v as its natural JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native()) //nolint:wrapcheck
}
