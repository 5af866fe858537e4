package aeris

import "fmt"

// APIError is a structured error reported by the Aeris API itself. The
// Code field is stable and suitable for programmatic handling (for
// example "invalid_client" or "warn_no_data" raised fatally). Response
// carries the raw transport response for diagnostics.
type APIError struct {
	Code        string
	Description string
	Response    *Response
}

func (e *APIError) Error() string {
	return fmt.Sprintf("aeris api error %s: %s", e.Code, e.Description)
}

// InvalidResponseError indicates the API signalled failure (HTTP status
// or success flag) without a structured error object. The raw body, if
// any, remains on Response.
type InvalidResponseError struct {
	Status   int
	Response *Response
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid aeris api response: http status %d with no structured error", e.Status)
}

// ResponseParseError wraps any failure to interpret a response body:
// non-JSON content, a malformed envelope, or a deserializer error on a
// payload element. The raw body is retained on Response so malformed
// payloads can be inspected.
type ResponseParseError struct {
	Response *Response
	Err      error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("parsing aeris api response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

// MalformedGeoJSONError indicates a response element was valid GeoJSON
// but did not carry the embedded model payload. There is no recovery;
// the payload cannot be located.
type MalformedGeoJSONError struct {
	Reason string
}

func (e *MalformedGeoJSONError) Error() string {
	return "malformed geojson: " + e.Reason
}

// UsageError indicates the client library was called incorrectly, for
// example attaching a request body to a GET action. It is raised before
// any network activity.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Message
}
