package aeris

import (
	"fmt"
	"time"

	"github.com/couchcryptid/aeris-weather-client/internal/jsonwalk"
)

// parseTimeISO parses a standard Aeris dateTimeISO field, for example
// "2022-04-27T13:00:00-05:00".
func parseTimeISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid dateTimeISO %q: %w", s, err)
	}
	return t, nil
}

// deserializeRelativeTo builds a RelativeTo from a decoded relativeTo
// object. Only the closest action returns one, so a nil input yields a
// nil model rather than an error.
func deserializeRelativeTo(v jsonwalk.Value) (*RelativeTo, error) {
	if v == nil {
		return nil, nil
	}
	w := jsonwalk.NewWalker(v, "RelativeTo")
	r := &RelativeTo{
		Lat:        w.Float("lat"),
		Long:       w.Float("long"),
		Bearing:    w.Int("bearing"),
		BearingENG: w.String("bearingENG"),
		DistanceKM: w.Float("distanceKM"),
		DistanceMI: w.Float("distanceMI"),
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// stringList coerces a decoded array into a []string, naming the
// offending element on mismatch.
func stringList(v jsonwalk.Array, label string) ([]string, error) {
	out := make([]string, 0, len(v))
	for i, elem := range v {
		s, ok := elem.(string)
		if !ok {
			return nil, &jsonwalk.TypeError{Label: label, Path: []jsonwalk.Step{i}, Want: "string", Got: elem}
		}
		out = append(out, s)
	}
	return out, nil
}
