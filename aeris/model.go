package aeris

import "encoding/json"

// The Aeris API has few structures that are truly shared between
// endpoints; location, place, and relativeTo are the ones that are.
// Model values are built once by a deserializer and read-only
// afterwards.

// Location is a latitude/longitude pair returned with most responses.
type Location struct {
	Lat  float64
	Long float64
}

// Equal reports approximate equality. Coordinates use loose tolerances
// because the API rounds them inconsistently between actions.
func (l Location) Equal(other Location) bool {
	return closeTo(l.Lat, other.Lat, coordRelTol, coordAbsTol) &&
		closeTo(l.Long, other.Long, coordRelTol, coordAbsTol)
}

// Place describes the named place a response refers to. State is nil
// for countries that have none.
type Place struct {
	Name    string
	State   *string
	Country string
}

func (p Place) Equal(other Place) bool {
	if p.Name != other.Name || p.Country != other.Country {
		return false
	}
	if p.State == nil || other.State == nil {
		return p.State == other.State
	}
	return *p.State == *other.State
}

// Profile holds the profile fields common to all endpoints. Endpoints
// extend it with their own fields; the API only guarantees tz.
type Profile struct {
	TZ string
}

// RelativeTo describes the observation location relative to the
// requested location. It is returned by the closest action (and
// sometimes within), nil otherwise.
type RelativeTo struct {
	Lat        float64
	Long       float64
	Bearing    int
	BearingENG string
	DistanceKM float64
	DistanceMI float64
}

// Equal reports approximate equality, treating two nil values as equal.
func (r *RelativeTo) Equal(other *RelativeTo) bool {
	if r == nil || other == nil {
		return r == other
	}
	return closeTo(r.Lat, other.Lat, defaultRelTol, 0) &&
		closeTo(r.Long, other.Long, defaultRelTol, 0) &&
		r.Bearing == other.Bearing &&
		r.BearingENG == other.BearingENG &&
		closeTo(r.DistanceKM, other.DistanceKM, defaultRelTol, 0) &&
		closeTo(r.DistanceMI, other.DistanceMI, defaultRelTol, 0)
}

// RoutePlace is one entry of a route action request: either a place
// query string or a GeoJSON geometry, each with an optional feature ID
// and time offset. Implemented by PlaceQuery and GeometryPlace.
type RoutePlace interface {
	// routeValue returns the wire representation of this entry.
	routeValue() any
}

// PlaceQuery is a route entry named by an Aeris place string, for
// example "minneapolis,mn" or "55344".
type PlaceQuery struct {
	P string

	// ID names the GeoJSON feature in the route output.
	ID string

	// From is the time period of interest for this entry, for example
	// "+2hours".
	From string
}

func (p PlaceQuery) routeValue() any {
	m := map[string]any{"p": p.P}
	if p.ID != "" {
		m["id"] = p.ID
	}
	if p.From != "" {
		m["from"] = p.From
	}
	return m
}

// GeoJSONGeometry is a geometry submitted with a route request. Only
// Point and LineString are accepted by the API. Note GeoJSON orders
// coordinates (longitude, latitude).
type GeoJSONGeometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// NewPoint builds a Point geometry from a (longitude, latitude) pair.
func NewPoint(long, lat float64) GeoJSONGeometry {
	return GeoJSONGeometry{Type: "Point", Coordinates: []float64{long, lat}}
}

// NewLineString builds a LineString geometry from (longitude, latitude)
// pairs.
func NewLineString(coords ...[2]float64) GeoJSONGeometry {
	points := make([][]float64, len(coords))
	for i, c := range coords {
		points[i] = []float64{c[0], c[1]}
	}
	return GeoJSONGeometry{Type: "LineString", Coordinates: points}
}

// GeometryPlace is a route entry located by a GeoJSON geometry. It is
// encoded as a GeoJSON Feature with the ID at the top level and the
// time offset under properties.from.
type GeometryPlace struct {
	Geometry GeoJSONGeometry
	ID       string
	From     string
}

func (g GeometryPlace) routeValue() any {
	m := map[string]any{
		"type":     "Feature",
		"geometry": g.Geometry,
	}
	if g.ID != "" {
		m["id"] = g.ID
	}
	if g.From != "" {
		m["properties"] = map[string]any{"from": g.From}
	}
	return m
}

// encodeRoute serializes a route request body: a JSON array with one
// entry per place, in caller order.
func encodeRoute(route []RoutePlace) ([]byte, error) {
	entries := make([]any, len(route))
	for i, p := range route {
		entries[i] = p.routeValue()
	}
	return json.Marshal(entries)
}
