package aeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/aeris-weather-client/internal/jsonwalk"
)

func decodeJSON(t *testing.T, raw string) jsonwalk.Value {
	t.Helper()
	v, err := jsonwalk.Decode([]byte(raw))
	require.NoError(t, err)
	return v
}

func TestDecodeGeoJSON_Feature(t *testing.T) {
	v := decodeJSON(t, `{
		"type": "Feature",
		"id": "mpls",
		"geometry": {"type": "Point", "coordinates": [-93.22, 44.88]},
		"properties": {"from": "+1hour", "response": {"id": "x"}}
	}`)

	f, ok := decodeGeoJSON(v)
	require.True(t, ok)
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "mpls", f.ID)
	assert.Contains(t, f.Properties, "response")
	assert.Contains(t, f.Properties, "from")
}

func TestDecodeGeoJSON_NullGeometry(t *testing.T) {
	v := decodeJSON(t, `{"type": "Feature", "geometry": null, "properties": {}}`)
	_, ok := decodeGeoJSON(v)
	assert.True(t, ok, "GeoJSON permits an explicit null geometry")
}

func TestDecodeGeoJSON_NotGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain model payload", `{"id": "KMSP", "loc": {"lat": 1, "long": 2}}`},
		{"type is not a geojson discriminator", `{"type": "o3", "name": "ozone"}`},
		{"feature without geometry", `{"type": "Feature", "properties": {}}`},
		{"feature without properties", `{"type": "Feature", "geometry": null}`},
		{"geometry missing coordinates", `{"type": "Feature", "geometry": {"type": "Point"}, "properties": {}}`},
		{"unknown geometry type", `{"type": "Feature", "geometry": {"type": "Circle", "coordinates": []}, "properties": {}}`},
		{"featurecollection without features", `{"type": "FeatureCollection"}`},
		{"array value", `[1, 2, 3]`},
		{"scalar value", `"Feature"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := decodeGeoJSON(decodeJSON(t, tt.raw))
			assert.False(t, ok)
		})
	}
}

func wrappedPayload(t *testing.T) jsonwalk.Value {
	return decodeJSON(t, `{
		"type": "Feature",
		"id": "stop-1",
		"geometry": {"type": "Point", "coordinates": [-93.22, 44.88]},
		"properties": {
			"from": "+2hours",
			"response": `+airQualityJSON+`
		}
	}`)
}

func TestWithGeoJSON_Unwrap(t *testing.T) {
	deserialize := withGeoJSON(deserializeAirQuality)

	model, err := deserialize(wrappedPayload(t))
	require.NoError(t, err)

	require.NotNil(t, model.GeoJSON)
	assert.Equal(t, "Feature", model.GeoJSON.Type)
	assert.Equal(t, "stop-1", model.GeoJSON.ID)
	assert.NotContains(t, model.GeoJSON.Properties, "response",
		"payload must not be duplicated on the retained envelope")
	assert.Contains(t, model.GeoJSON.Properties, "from")

	require.NotNil(t, model.ID)
	assert.Equal(t, "KMSP", *model.ID)
}

func TestWithGeoJSON_PlainPayloadPassthrough(t *testing.T) {
	deserialize := withGeoJSON(deserializeAirQuality)

	model, err := deserialize(decodeJSON(t, airQualityJSON))
	require.NoError(t, err)
	assert.Nil(t, model.GeoJSON)
}

func TestWithGeoJSON_RoundTripEqualExceptEnvelope(t *testing.T) {
	deserialize := withGeoJSON(deserializeAirQuality)

	wrapped, err := deserialize(wrappedPayload(t))
	require.NoError(t, err)
	plain, err := deserialize(decodeJSON(t, airQualityJSON))
	require.NoError(t, err)

	assert.False(t, wrapped.Equal(plain), "envelope presence must matter to equality")

	wrapped.GeoJSON = nil
	assert.True(t, wrapped.Equal(plain))
}

func TestWithGeoJSON_MissingResponsePayload(t *testing.T) {
	deserialize := withGeoJSON(deserializeAirQuality)

	_, err := deserialize(decodeJSON(t, `{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [0, 0]},
		"properties": {"from": "+1hour"}
	}`))

	var malformed *MalformedGeoJSONError
	require.ErrorAs(t, err, &malformed)
}

func TestWithGeoJSON_FeatureCollectionIsMalformed(t *testing.T) {
	deserialize := withGeoJSON(deserializeAirQuality)

	_, err := deserialize(decodeJSON(t, `{"type": "FeatureCollection", "features": []}`))

	var malformed *MalformedGeoJSONError
	require.ErrorAs(t, err, &malformed)
}

func TestWithGeoJSON_DoesNotMutateInput(t *testing.T) {
	v := wrappedPayload(t)
	deserialize := withGeoJSON(deserializeAirQuality)

	_, err := deserialize(v)
	require.NoError(t, err)

	props, ok := v.(jsonwalk.Object)["properties"].(jsonwalk.Object)
	require.True(t, ok)
	assert.Contains(t, props, "response", "unwrapping must not mutate the decoded tree")
}
