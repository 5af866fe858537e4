package aeris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/aeris-weather-client/internal/jsonwalk"
)

// testObservation is a minimal model for normalizer tests.
type testObservation struct {
	GeoJSONHolder
	Temp      float64
	WindSpeed float64
	WindDir   int
}

func deserializeTestObservation(v jsonwalk.Value) (*testObservation, error) {
	w := jsonwalk.NewWalker(v, "testObservation")
	o := &testObservation{
		Temp:      w.Float("temp"),
		WindSpeed: w.Float("wind_speed"),
		WindDir:   w.Int("wind_dir"),
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func jsonResponse(status int, body string) *Response {
	return &Response{Status: status, Body: []byte(body)}
}

func TestNormalizeResponse_SingleObject(t *testing.T) {
	resp := jsonResponse(200, `{
		"success": true,
		"error": null,
		"response": {"temp": 70.5, "wind_speed": 5.8, "wind_dir": 270}
	}`)

	result, err := normalizeResponse(resp, deserializeTestObservation)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Nil(t, result.Error)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 70.5, result.Items[0].Temp)
	assert.Equal(t, 5.8, result.Items[0].WindSpeed)
	assert.Equal(t, 270, result.Items[0].WindDir)
}

func TestNormalizeResponse_ShapeCollapse(t *testing.T) {
	obj := `{"temp": 70.5, "wind_speed": 5.8, "wind_dir": 270}`

	tests := []struct {
		name      string
		payload   string
		wantItems int
	}{
		{"null payload", "null", 0},
		{"single object", obj, 1},
		{"one-element list", "[" + obj + "]", 1},
		{"two-element list", "[" + obj + "," + obj + "]", 2},
		{"empty list", "[]", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := jsonResponse(200, `{"success": true, "error": null, "response": `+tt.payload+`}`)
			result, err := normalizeResponse(resp, deserializeTestObservation)
			require.NoError(t, err)
			assert.Len(t, result.Items, tt.wantItems)
		})
	}
}

func TestNormalizeResponse_SingleAndListAgree(t *testing.T) {
	single := jsonResponse(200, `{"success": true, "error": null,
		"response": {"temp": 70.5, "wind_speed": 5.8, "wind_dir": 270}}`)
	list := jsonResponse(200, `{"success": true, "error": null,
		"response": [{"temp": 70.5, "wind_speed": 5.8, "wind_dir": 270}]}`)

	fromSingle, err := normalizeResponse(single, deserializeTestObservation)
	require.NoError(t, err)
	fromList, err := normalizeResponse(list, deserializeTestObservation)
	require.NoError(t, err)

	require.Len(t, fromSingle.Items, 1)
	require.Len(t, fromList.Items, 1)
	assert.Equal(t, fromSingle.Items[0], fromList.Items[0])
}

func TestNormalizeResponse_PreservesListOrder(t *testing.T) {
	resp := jsonResponse(200, `{"success": true, "error": null, "response": [
		{"temp": 1, "wind_speed": 0, "wind_dir": 0},
		{"temp": 2, "wind_speed": 0, "wind_dir": 0},
		{"temp": 3, "wind_speed": 0, "wind_dir": 0}
	]}`)

	result, err := normalizeResponse(resp, deserializeTestObservation)
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	for i, item := range result.Items {
		assert.Equal(t, float64(i+1), item.Temp)
	}
}

func TestNormalizeResponse_InformationalError(t *testing.T) {
	resp := jsonResponse(200, `{
		"success": true,
		"error": {"code": "warn_no_data", "description": "No data was returned for the request."},
		"response": []
	}`)

	result, err := normalizeResponse(resp, deserializeTestObservation)
	require.NoError(t, err, "a co-occurring error with success=true is informational, not fatal")

	assert.Empty(t, result.Items)
	require.NotNil(t, result.Error)
	assert.Equal(t, "warn_no_data", result.Error.Code)
}

func TestNormalizeResponse_StructuredAPIError(t *testing.T) {
	resp := jsonResponse(400, `{
		"success": false,
		"error": {"code": "invalid_client", "description": "The client provided is invalid."},
		"response": null
	}`)

	_, err := normalizeResponse(resp, deserializeTestObservation)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_client", apiErr.Code)
	assert.Equal(t, "The client provided is invalid.", apiErr.Description)
	assert.Same(t, resp, apiErr.Response)
}

func TestNormalizeResponse_SuccessFalseWithoutHTTPError(t *testing.T) {
	// The envelope alone can signal failure even on HTTP 200.
	resp := jsonResponse(200, `{
		"success": false,
		"error": {"code": "invalid_request", "description": "bad request"},
		"response": null
	}`)

	_, err := normalizeResponse(resp, deserializeTestObservation)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_request", apiErr.Code)
}

func TestNormalizeResponse_NoStructuredError(t *testing.T) {
	resp := jsonResponse(500, `{"success": false, "response": null}`)

	_, err := normalizeResponse(resp, deserializeTestObservation)
	var invalidErr *InvalidResponseError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 500, invalidErr.Status)
	require.NotNil(t, invalidErr.Response)
	assert.NotNil(t, invalidErr.Response.Body, "raw body must survive for diagnostics")
}

func TestNormalizeResponse_DeserializerFailure(t *testing.T) {
	raw := `{"success": true, "error": null, "response": {"temp": "not-a-number", "wind_speed": 0, "wind_dir": 0}}`
	resp := jsonResponse(200, raw)

	_, err := normalizeResponse(resp, deserializeTestObservation)
	var parseErr *ResponseParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, []byte(raw), parseErr.Response.Body, "raw body retained on the parse failure")

	var typeErr *jsonwalk.TypeError
	assert.True(t, errors.As(err, &typeErr), "original cause must remain unwrappable")
}

func TestNormalizeResponse_NonJSONBody(t *testing.T) {
	resp := jsonResponse(200, `<html>gateway error</html>`)

	_, err := normalizeResponse(resp, deserializeTestObservation)
	var parseErr *ResponseParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestNormalizeResponse_MissingSuccessFlag(t *testing.T) {
	resp := jsonResponse(200, `{"response": []}`)

	_, err := normalizeResponse(resp, deserializeTestObservation)
	var parseErr *ResponseParseError
	require.ErrorAs(t, err, &parseErr)
}
