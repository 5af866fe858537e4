package aeris

import (
	"fmt"
	"math"
	"strings"
)

// Tolerances used by model equality checks. Coordinates get a looser
// relative tolerance because the API rounds them inconsistently between
// actions.
const (
	defaultRelTol = 1e-9
	coordRelTol   = 1e-3
	coordAbsTol   = 1e-4
)

// closeTo reports approximate equality of two floats, in the manner of
// math.isclose: |a-b| within relTol of the larger magnitude, or within
// absTol absolutely.
func closeTo(a, b, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= relTol*math.Max(math.Abs(a), math.Abs(b)) || diff <= absTol
}

// optClose reports approximate equality of two nullable floats. Two nil
// pointers are equal; a nil and a non-nil are not.
func optClose(a, b *float64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return closeTo(*a, *b, defaultRelTol, 0)
}

var (
	trueValues  = map[string]bool{"true": true, "t": true, "1": true, "yes": true, "y": true}
	falseValues = map[string]bool{"false": true, "f": true, "0": true, "no": true, "n": true}
)

// ParseBool interprets the loose boolean spellings accepted around the
// Aeris API ("true", "t", "1", "yes", "y" and their negatives, case
// insensitive).
func ParseBool(s string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if trueValues[normalized] {
		return true, nil
	}
	if falseValues[normalized] {
		return false, nil
	}
	return false, fmt.Errorf("could not interpret %q as a boolean", s)
}
