package aeris

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

const (
	airQualityPath = "airquality"
	airQualityDocs = "https://www.aerisweather.com/support/docs/api/reference/endpoints/airquality/"
)

// AirQualityEndpoint issues requests against the air quality endpoint.
// Obtain one from a Client rather than constructing it directly.
type AirQualityEndpoint struct {
	ep *endpoint[*AirQuality]
}

func newAirQualityEndpoint(t Transport, stripBody bool, logger *slog.Logger) *AirQualityEndpoint {
	return &AirQualityEndpoint{
		ep: newEndpoint(t, airQualityPath, airQualityDocs, withGeoJSON(deserializeAirQuality), stripBody, logger),
	}
}

// Docs returns the URL of the Aeris documentation for this endpoint.
func (e *AirQualityEndpoint) Docs() string {
	return e.ep.docs
}

// Get performs an :id lookup for a location or station ID, for example
// "55344" or "KMSP".
func (e *AirQualityEndpoint) Get(ctx context.Context, id string, opts *QueryOptions) (*APIResponse[*AirQuality], error) {
	return e.ep.request(ctx, http.MethodGet, url.PathEscape(id), opts.values(), nil)
}

// Closest returns results nearest to the given place.
func (e *AirQualityEndpoint) Closest(ctx context.Context, place string, opts *QueryOptions) (*APIResponse[*AirQuality], error) {
	return e.ep.request(ctx, http.MethodGet, "closest", withPlace(place, opts), nil)
}

// Search queries results matching the options' query/filter criteria.
func (e *AirQualityEndpoint) Search(ctx context.Context, place string, opts *QueryOptions) (*APIResponse[*AirQuality], error) {
	return e.ep.request(ctx, http.MethodGet, "search", withPlace(place, opts), nil)
}

// Within returns results inside the region described by the place and
// options.
func (e *AirQualityEndpoint) Within(ctx context.Context, place string, opts *QueryOptions) (*APIResponse[*AirQuality], error) {
	return e.ep.request(ctx, http.MethodGet, "within", withPlace(place, opts), nil)
}

// Route submits multiple places in one request and returns one
// GeoJSON-wrapped result per place, in request order. Each item's
// GeoJSON field carries its originating feature.
func (e *AirQualityEndpoint) Route(ctx context.Context, route []RoutePlace, opts *QueryOptions) (*APIResponse[*AirQuality], error) {
	if len(route) == 0 {
		return nil, &UsageError{Message: "route requires at least one place"}
	}
	body, err := encodeRoute(route)
	if err != nil {
		return nil, fmt.Errorf("encode route request: %w", err)
	}
	return e.ep.request(ctx, http.MethodPost, "route", opts.values(), body)
}

// withPlace renders opts and adds the place locator when present. The
// locator is a path-level concern for :id lookups but a query parameter
// for the named actions.
func withPlace(place string, opts *QueryOptions) url.Values {
	v := opts.values()
	if place != "" {
		v.Set("p", place)
	}
	return v
}
