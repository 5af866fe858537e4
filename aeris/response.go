package aeris

import (
	"github.com/couchcryptid/aeris-weather-client/internal/jsonwalk"
)

// ResponseError is the error object of an Aeris API envelope. It may
// accompany a successful response (informational codes such as
// "warn_no_data"); it only becomes fatal when the envelope signals
// failure, in which case it is raised as *APIError.
type ResponseError struct {
	Code        string
	Description string
}

// APIResponse is a fully parsed Aeris API response. Items holds the
// deserialized payload normalized to a list: a null payload yields zero
// items, a single object yields one, and an array yields its elements
// in the original order.
//
// HTTP is the raw transport response. Its body is stripped after
// successful parsing by default; construct the client with raw body
// retention to keep it.
type APIResponse[M any] struct {
	HTTP    *Response
	Success bool
	Error   *ResponseError
	Items   []M
}

// deserializerFunc builds one model from one decoded payload element.
type deserializerFunc[M any] func(jsonwalk.Value) (M, error)

// normalizeResponse interprets the envelope of httpResp and applies
// deserialize to each payload element. It returns an error for
// unintelligible bodies (*ResponseParseError) and for API-reported
// failures (*APIError, *InvalidResponseError).
func normalizeResponse[M any](httpResp *Response, deserialize deserializerFunc[M]) (*APIResponse[M], error) {
	decoded, err := httpResp.JSON()
	if err != nil {
		return nil, &ResponseParseError{Response: httpResp, Err: err}
	}

	w := jsonwalk.NewWalker(decoded, "AerisAPIResponse")
	success := w.Bool("success")
	if err := w.Err(); err != nil {
		return nil, &ResponseParseError{Response: httpResp, Err: err}
	}

	// An absent error key means the same as an explicit null.
	var respErr *ResponseError
	if raw := w.WalkDefault(nil, "error"); raw != nil {
		ew := jsonwalk.NewWalker(raw, "AerisAPIResponseError")
		respErr = &ResponseError{
			Code:        ew.String("code"),
			Description: ew.String("description"),
		}
		if err := ew.Err(); err != nil {
			return nil, &ResponseParseError{Response: httpResp, Err: err}
		}
	}

	payload := w.WalkDefault(nil, "response")
	var items []M
	switch p := payload.(type) {
	case nil:
		items = []M{}
	case jsonwalk.Array:
		items = make([]M, 0, len(p))
		for _, elem := range p {
			m, err := deserialize(elem)
			if err != nil {
				return nil, &ResponseParseError{Response: httpResp, Err: err}
			}
			items = append(items, m)
		}
	default:
		m, err := deserialize(p)
		if err != nil {
			return nil, &ResponseParseError{Response: httpResp, Err: err}
		}
		items = []M{m}
	}

	if httpResp.Status >= 400 || !success {
		if respErr != nil {
			return nil, &APIError{Code: respErr.Code, Description: respErr.Description, Response: httpResp}
		}
		return nil, &InvalidResponseError{Status: httpResp.Status, Response: httpResp}
	}

	return &APIResponse[M]{
		HTTP:    httpResp,
		Success: success,
		Error:   respErr,
		Items:   items,
	}, nil
}
