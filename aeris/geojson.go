package aeris

import (
	"reflect"

	"github.com/couchcryptid/aeris-weather-client/internal/jsonwalk"
)

// Feature is the GeoJSON envelope the route action wraps each result
// in. Geometry is kept as the raw decoded value; this package is not a
// GeoJSON library and only needs to carry the envelope alongside its
// model. Properties holds the feature's properties minus the embedded
// "response" payload, which is consumed during unwrapping.
type Feature struct {
	Type       string
	ID         jsonwalk.Value
	Geometry   jsonwalk.Value
	Properties jsonwalk.Object
}

// Equal reports structural equality of two envelopes, treating two nil
// pointers as equal.
func (f *Feature) Equal(other *Feature) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Type == other.Type &&
		reflect.DeepEqual(f.ID, other.ID) &&
		reflect.DeepEqual(f.Geometry, other.Geometry) &&
		reflect.DeepEqual(f.Properties, other.Properties)
}

var geometryTypes = map[string]bool{
	"Point":           true,
	"MultiPoint":      true,
	"LineString":      true,
	"MultiLineString": true,
	"Polygon":         true,
	"MultiPolygon":    true,
}

// validGeometry checks a decoded geometry member. GeoJSON allows an
// explicit null geometry on a Feature.
func validGeometry(v jsonwalk.Value) bool {
	if v == nil {
		return true
	}
	obj, ok := v.(jsonwalk.Object)
	if !ok {
		return false
	}
	t, ok := obj["type"].(string)
	if !ok {
		return false
	}
	if t == "GeometryCollection" {
		_, ok := obj["geometries"].(jsonwalk.Array)
		return ok
	}
	if !geometryTypes[t] {
		return false
	}
	_, ok = obj["coordinates"].(jsonwalk.Array)
	return ok
}

// decodeGeoJSON attempts a strict interpretation of v as a GeoJSON
// Feature or FeatureCollection. It is an ordinary fallible parse: ok is
// false when v is not GeoJSON, which callers treat as "v is a plain
// model payload", not as an error.
//
// The returned Feature owns a shallow copy of the properties map, so
// consuming entries from it never mutates the decoded response tree.
func decodeGeoJSON(v jsonwalk.Value) (*Feature, bool) {
	obj, ok := v.(jsonwalk.Object)
	if !ok {
		return nil, false
	}
	t, ok := obj["type"].(string)
	if !ok {
		return nil, false
	}

	switch t {
	case "Feature":
		geom, present := obj["geometry"]
		if !present || !validGeometry(geom) {
			return nil, false
		}
		props, present := obj["properties"]
		if !present {
			return nil, false
		}
		var copied jsonwalk.Object
		if props != nil {
			orig, ok := props.(jsonwalk.Object)
			if !ok {
				return nil, false
			}
			copied = make(jsonwalk.Object, len(orig))
			for k, val := range orig {
				copied[k] = val
			}
		}
		return &Feature{Type: t, ID: obj["id"], Geometry: geom, Properties: copied}, true

	case "FeatureCollection":
		// Recognized as GeoJSON so it is not mistaken for a model
		// payload. It carries no properties, so unwrapping will report
		// it as malformed rather than guessing at a payload location.
		if _, ok := obj["features"].(jsonwalk.Array); !ok {
			return nil, false
		}
		return &Feature{Type: t}, true

	default:
		return nil, false
	}
}

// geoAttacher is implemented by models that can carry the GeoJSON
// feature that wrapped them in a route response.
type geoAttacher interface {
	attachGeoJSON(*Feature)
}

// GeoJSONHolder is embedded by models to carry an optional originating
// GeoJSON envelope. The field is set only for route-style responses.
type GeoJSONHolder struct {
	// GeoJSON is the feature that wrapped this model in a route
	// response, nil for plain responses.
	GeoJSON *Feature
}

func (h *GeoJSONHolder) attachGeoJSON(f *Feature) {
	h.GeoJSON = f
}

// withGeoJSON wraps a model deserializer with GeoJSON envelope
// detection. Every endpoint deserializer is wrapped exactly once, so
// the two-path behavior is invisible to endpoint code.
func withGeoJSON[M geoAttacher](inner deserializerFunc[M]) deserializerFunc[M] {
	return func(v jsonwalk.Value) (M, error) {
		feature, ok := decodeGeoJSON(v)
		if !ok {
			return inner(v)
		}

		var zero M
		payload, present := feature.Properties["response"]
		if !present {
			return zero, &MalformedGeoJSONError{Reason: "missing properties.response payload"}
		}
		delete(feature.Properties, "response")

		model, err := inner(payload)
		if err != nil {
			return zero, err
		}
		model.attachGeoJSON(feature)
		return model, nil
	}
}
