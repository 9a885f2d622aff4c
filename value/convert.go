package value

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ErrUnsupportedType is returned when a decoded Go value has no Value equivalent.
var ErrUnsupportedType = errors.New("unsupported value type")

// ErrNonFiniteNumber is returned for NaN and infinite numbers.
var ErrNonFiniteNumber = errors.New("number is not finite")

// FromNative converts the output of a decoder (encoding/json, YAML, TOML) into a Value.
// Map keys that are not strings are rendered with fmt.Sprint.
func FromNative(native any) (Value, error) {
	switch typed := native.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return typed, nil
	case bool:
		return BoolValue(typed), nil
	case string:
		return StringValue(typed), nil
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("number %q: %w", typed.String(), err)
		}

		return finite(f)
	case float64:
		return finite(typed)
	case float32:
		return finite(float64(typed))
	case int:
		return NumberValue(float64(typed)), nil
	case int64:
		return NumberValue(float64(typed)), nil
	case uint64:
		return NumberValue(float64(typed)), nil
	case []any:
		return fromSlice(reflect.ValueOf(typed))
	case map[string]any:
		entries := make(map[string]Value, len(typed))

		for key, item := range typed {
			converted, err := FromNative(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}

			entries[key] = converted
		}

		return Value{kind: Mapping, keyed: entries}, nil
	case encoding.TextMarshaler:
		text, err := typed.MarshalText()
		if err != nil {
			return Value{}, fmt.Errorf("marshal %T: %w", typed, err)
		}

		return StringValue(string(text)), nil
	case fmt.Stringer:
		return StringValue(typed.String()), nil
	}

	return fromReflect(reflect.ValueOf(native))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() { //nolint:exhaustive // remaining kinds are unsupported
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NullValue(), nil
		}

		return FromNative(rv.Elem().Interface())
	case reflect.Bool:
		return BoolValue(rv.Bool()), nil
	case reflect.String:
		return StringValue(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberValue(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberValue(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float())
	case reflect.Slice, reflect.Array:
		return fromSlice(rv)
	case reflect.Map:
		entries := make(map[string]Value, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())

			converted, err := FromNative(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}

			entries[key] = converted
		}

		return Value{kind: Mapping, keyed: entries}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
}

func fromSlice(rv reflect.Value) (Value, error) {
	items := make([]Value, rv.Len())

	for i := range rv.Len() {
		converted, err := FromNative(rv.Index(i).Interface())
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}

		items[i] = converted
	}

	return Value{kind: Sequence, items: items}, nil
}

func finite(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrNonFiniteNumber, f)
	}

	return NumberValue(f), nil
}

// FormatNumber renders n in its canonical decimal form: the shortest digit string that
// round-trips, in plain notation for magnitudes in [1e-6, 1e21) and exponent notation otherwise.
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	formatted := strconv.FormatFloat(n, 'e', -1, 64)

	mantissa, exponent, _ := strings.Cut(formatted, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")

	return mantissa + "e" + sign + digits
}
