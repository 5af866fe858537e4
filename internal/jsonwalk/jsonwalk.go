// Package jsonwalk provides safe traversal of decoded JSON trees.
//
// The Aeris API returns loosely structured JSON whose shape varies between
// endpoints and actions. Deserializers address into that structure with a
// Walker, which produces a clear error naming the exact property that was
// missing or not traversable instead of a panic or a zero value.
//
// # Value representation
//
// Decoded JSON is a dynamic tree of nil, bool, json.Number, string,
// [Array], and [Object]. [Decode] produces this representation with
// numbers kept as json.Number so integer fields survive untouched.
package jsonwalk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is any decoded JSON value: nil, bool, json.Number, string,
// Object, or Array.
type Value = any

// Object is a decoded JSON object.
type Object = map[string]Value

// Array is a decoded JSON array.
type Array = []Value

// Step addresses one level of a decoded JSON tree: a string key for
// objects or an int index for arrays.
type Step = any

// Decode parses raw JSON into the package's Value representation.
// Numbers are decoded as json.Number.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return normalize(v), nil
}

// normalize rewrites the maps and slices produced by encoding/json into
// Object and Array so type switches throughout the package stay total.
func normalize(v any) Value {
	switch t := v.(type) {
	case map[string]any:
		obj := make(Object, len(t))
		for k, val := range t {
			obj[k] = normalize(val)
		}
		return obj
	case []any:
		arr := make(Array, len(t))
		for i, val := range t {
			arr[i] = normalize(val)
		}
		return arr
	default:
		return t
	}
}

// Kind classifies a walk failure.
type Kind int

const (
	// KindMissingProperty indicates an absent object key or an
	// out-of-range array index.
	KindMissingProperty Kind = iota

	// KindNotIndexable indicates a step into a value that is not an
	// object or array, or a step of the wrong type for the collection
	// it addresses.
	KindNotIndexable
)

// WalkError describes a failed walk. Walked holds the steps successfully
// taken before the failure; Path holds the full requested path.
type WalkError struct {
	Kind   Kind
	Label  string
	Walked []Step
	Path   []Step
}

func (e *WalkError) Error() string {
	switch e.Kind {
	case KindMissingProperty:
		return fmt.Sprintf("%s: missing required property %s; can't access %s",
			e.Label, joinPath(e.Walked), joinPath(e.Path))
	default:
		return fmt.Sprintf("%s: property %s is not an object or array; can't access %s",
			e.Label, joinPath(e.Walked), joinPath(e.Path))
	}
}

// TypeError is returned by the typed getters when a property exists but
// holds a value of the wrong type.
type TypeError struct {
	Label string
	Path  []Step
	Want  string
	Got   Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: property %s: expected %s, got %s",
		e.Label, joinPath(e.Path), e.Want, describe(e.Got))
}

func joinPath(steps []Step) string {
	if len(steps) == 0 {
		return "(root)"
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("%v", s)
	}
	return strings.Join(parts, ".")
}

// describe names a Value's JSON type for error messages.
func describe(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	case string:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
