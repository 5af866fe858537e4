package jsonwalk

import (
	"encoding/json"
	"math"
)

// Walker addresses values inside one decoded JSON tree. The label names
// the model being built and appears in every error message.
//
// A Walker may be rebound to successive objects with SetObject, for
// example once per element of a response payload, but it addresses
// exactly one object at a time and must not be shared between
// goroutines.
//
// The typed getters (String, Float, ...) record the first failure
// instead of returning it, so a deserializer can read every field and
// check Err once. Walk and WalkDefault report errors directly and do
// not touch the recorded state.
type Walker struct {
	root  Value
	label string
	err   error
}

// NewWalker creates a Walker over v. label describes what v represents.
func NewWalker(v Value, label string) *Walker {
	return &Walker{root: v, label: label}
}

// SetObject rebinds the Walker to a new root value and label, clearing
// any recorded error.
func (w *Walker) SetObject(v Value, label string) {
	w.root = v
	w.label = label
	w.err = nil
}

// Err returns the first failure recorded by a typed getter, or nil.
func (w *Walker) Err() error {
	return w.err
}

// Walk returns the value at the given path. An empty path returns the
// root unchanged. The traversal is read-only; the tree is never
// modified.
func (w *Walker) Walk(steps ...Step) (Value, error) {
	current := w.root
	walked := make([]Step, 0, len(steps))
	for _, s := range steps {
		switch c := current.(type) {
		case Object:
			key, ok := s.(string)
			if !ok {
				return nil, &WalkError{Kind: KindNotIndexable, Label: w.label, Walked: walked, Path: steps}
			}
			walked = append(walked, s)
			v, present := c[key]
			if !present {
				return nil, &WalkError{Kind: KindMissingProperty, Label: w.label, Walked: walked, Path: steps}
			}
			current = v
		case Array:
			idx, ok := s.(int)
			if !ok {
				return nil, &WalkError{Kind: KindNotIndexable, Label: w.label, Walked: walked, Path: steps}
			}
			walked = append(walked, s)
			if idx < 0 || idx >= len(c) {
				return nil, &WalkError{Kind: KindMissingProperty, Label: w.label, Walked: walked, Path: steps}
			}
			current = c[idx]
		default:
			return nil, &WalkError{Kind: KindNotIndexable, Label: w.label, Walked: walked, Path: steps}
		}
	}
	return current, nil
}

// WalkDefault returns the value at the given path, or def if any step
// is missing or not traversable.
func (w *Walker) WalkDefault(def Value, steps ...Step) Value {
	v, err := w.Walk(steps...)
	if err != nil {
		return def
	}
	return v
}

// record keeps the first failure seen by a typed getter.
func (w *Walker) record(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Walker) typeErr(steps []Step, want string, got Value) {
	w.record(&TypeError{Label: w.label, Path: steps, Want: want, Got: got})
}

// String returns the string at path, recording an error if the path
// does not resolve or the value is not a string.
func (w *Walker) String(steps ...Step) string {
	if w.err != nil {
		return ""
	}
	v, err := w.Walk(steps...)
	if err != nil {
		w.record(err)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		w.typeErr(steps, "string", v)
		return ""
	}
	return s
}

// StringOr returns the string at path, or def if the path does not
// resolve. A present value of the wrong type still records an error.
func (w *Walker) StringOr(def string, steps ...Step) string {
	if w.err != nil {
		return ""
	}
	v, err := w.Walk(steps...)
	if err != nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		w.typeErr(steps, "string", v)
		return ""
	}
	return s
}

// OptString returns the string at path, or nil when the value is JSON
// null. The path itself is required.
func (w *Walker) OptString(steps ...Step) *string {
	if w.err != nil {
		return nil
	}
	v, err := w.Walk(steps...)
	if err != nil {
		w.record(err)
		return nil
	}
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		w.typeErr(steps, "string or null", v)
		return nil
	}
	return &s
}

// Bool returns the boolean at path.
func (w *Walker) Bool(steps ...Step) bool {
	if w.err != nil {
		return false
	}
	v, err := w.Walk(steps...)
	if err != nil {
		w.record(err)
		return false
	}
	b, ok := v.(bool)
	if !ok {
		w.typeErr(steps, "boolean", v)
		return false
	}
	return b
}

// Float returns the number at path as a float64.
func (w *Walker) Float(steps ...Step) float64 {
	if w.err != nil {
		return 0
	}
	v, err := w.Walk(steps...)
	if err != nil {
		w.record(err)
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		w.typeErr(steps, "number", v)
		return 0
	}
	return f
}

// OptFloat returns the number at path as a *float64, or nil when the
// value is JSON null. The path itself is required.
func (w *Walker) OptFloat(steps ...Step) *float64 {
	if w.err != nil {
		return nil
	}
	v, err := w.Walk(steps...)
	if err != nil {
		w.record(err)
		return nil
	}
	if v == nil {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		w.typeErr(steps, "number or null", v)
		return nil
	}
	return &f
}

// Int returns the number at path as an int. Non-integral numbers record
// a type error.
func (w *Walker) Int(steps ...Step) int {
	if w.err != nil {
		return 0
	}
	v, err := w.Walk(steps...)
	if err != nil {
		w.record(err)
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		w.typeErr(steps, "integer", v)
		return 0
	}
	return n
}

// Array returns the array at path.
func (w *Walker) Array(steps ...Step) Array {
	if w.err != nil {
		return nil
	}
	v, err := w.Walk(steps...)
	if err != nil {
		w.record(err)
		return nil
	}
	a, ok := v.(Array)
	if !ok {
		w.typeErr(steps, "array", v)
		return nil
	}
	return a
}

// toFloat accepts json.Number plus the numeric types that appear when
// trees are built in code rather than decoded from bytes.
func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v Value) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.Trunc(n) != n {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
