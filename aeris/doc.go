// Package aeris is a typed client for v1 of the Aeris Weather API.
//
// # Response envelope
//
// Every Aeris endpoint wraps its payload in the same envelope:
//
//	{
//	  "success": bool,
//	  "error": null | {"code": string, "description": string},
//	  "response": null | object | [object, ...]
//	}
//
// The payload shape is genuinely variable: id lookups return a single
// object, list actions return an array, and empty results may arrive as
// null. The client normalizes all three to an ordered item list on
// [APIResponse], so callers never branch on payload shape.
//
// An error object can co-occur with success=true (for example
// "warn_no_data"); that is informational and surfaced on the response.
// success=false or an HTTP status of 400 and above is fatal and raised
// as *[APIError] when the envelope carries a structured error, or
// *[InvalidResponseError] when it does not.
//
// # GeoJSON route responses
//
// The route action submits several places in one POST and receives one
// GeoJSON Feature per place, with the actual model payload embedded
// under properties.response. Deserialization detects and unwraps that
// envelope transparently; the originating feature is retained on the
// model's GeoJSON field. Non-route responses leave the field nil.
//
// # Transport
//
// HTTP execution sits behind the narrow [Transport] interface.
// [HTTPTransport] is the net/http implementation; timeout and retry
// policy belong to the *http.Client it is given, not to this package.
package aeris
