package aeris

import "time"

// Models for the air quality endpoint. See
// https://www.aerisweather.com/support/docs/api/reference/endpoints/airquality/
// for field semantics.

// AirQualityPollutant is one pollutant entry of an observation.
// ValuePPB and ValueUGM3 are nil when the API does not report the
// concentration in that unit.
type AirQualityPollutant struct {
	Type      string
	Name      string
	ValuePPB  *float64
	ValueUGM3 *float64
	AQI       int
	Category  string
	Color     string
	Method    string
}

func (p AirQualityPollutant) Equal(other AirQualityPollutant) bool {
	return p.Type == other.Type &&
		p.Name == other.Name &&
		optClose(p.ValuePPB, other.ValuePPB) &&
		optClose(p.ValueUGM3, other.ValueUGM3) &&
		p.AQI == other.AQI &&
		p.Category == other.Category &&
		p.Color == other.Color &&
		p.Method == other.Method
}

// AirQualityObservation is one observation period: an overall AQI plus
// the pollutants it was derived from.
type AirQualityObservation struct {
	Timestamp  time.Time
	AQI        int
	Category   string
	Color      string
	Method     string
	Dominant   string
	Pollutants []AirQualityPollutant
}

func (o AirQualityObservation) Equal(other AirQualityObservation) bool {
	if !o.Timestamp.Equal(other.Timestamp) ||
		o.AQI != other.AQI ||
		o.Category != other.Category ||
		o.Color != other.Color ||
		o.Method != other.Method ||
		o.Dominant != other.Dominant ||
		len(o.Pollutants) != len(other.Pollutants) {
		return false
	}
	for i := range o.Pollutants {
		if !o.Pollutants[i].Equal(other.Pollutants[i]) {
			return false
		}
	}
	return true
}

// AirQualitySource is one provider of air quality data.
type AirQualitySource struct {
	Name string
}

// AirQualityProfile extends the common profile with data provenance.
// Stations is never nil; a null stations property is normalized to an
// empty list during deserialization.
type AirQualityProfile struct {
	Profile
	Sources  []AirQualitySource
	Stations []string
}

func (p AirQualityProfile) Equal(other AirQualityProfile) bool {
	if p.TZ != other.TZ ||
		len(p.Sources) != len(other.Sources) ||
		len(p.Stations) != len(other.Stations) {
		return false
	}
	for i := range p.Sources {
		if p.Sources[i] != other.Sources[i] {
			return false
		}
	}
	for i := range p.Stations {
		if p.Stations[i] != other.Stations[i] {
			return false
		}
	}
	return true
}

// AirQuality is one air quality result. ID names the reporting station
// when the data comes from a single station, nil otherwise. RelativeTo
// is set by the closest action. The embedded GeoJSON field is set for
// route responses.
type AirQuality struct {
	GeoJSONHolder
	ID         *string
	Loc        Location
	Place      Place
	Periods    []AirQualityObservation
	Profile    AirQualityProfile
	RelativeTo *RelativeTo
}

// Equal reports structural equality with tolerance-based float
// comparison, including the GeoJSON envelope.
func (a *AirQuality) Equal(other *AirQuality) bool {
	if a == nil || other == nil {
		return a == other
	}
	if (a.ID == nil) != (other.ID == nil) {
		return false
	}
	if a.ID != nil && *a.ID != *other.ID {
		return false
	}
	if !a.Loc.Equal(other.Loc) ||
		!a.Place.Equal(other.Place) ||
		!a.Profile.Equal(other.Profile) ||
		!a.RelativeTo.Equal(other.RelativeTo) ||
		len(a.Periods) != len(other.Periods) {
		return false
	}
	for i := range a.Periods {
		if !a.Periods[i].Equal(other.Periods[i]) {
			return false
		}
	}
	return a.GeoJSON.Equal(other.GeoJSON)
}
