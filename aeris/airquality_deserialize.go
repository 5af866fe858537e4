package aeris

import (
	"github.com/couchcryptid/aeris-weather-client/internal/jsonwalk"
)

// deserializeAirQuality builds an AirQuality from one element of an air
// quality response payload.
func deserializeAirQuality(v jsonwalk.Value) (*AirQuality, error) {
	w := jsonwalk.NewWalker(v, "AirQuality")

	id := w.OptString("id")
	loc := Location{Lat: w.Float("loc", "lat"), Long: w.Float("loc", "long")}
	place := Place{
		Name:    w.String("place", "name"),
		State:   w.OptString("place", "state"),
		Country: w.String("place", "country"),
	}
	rawPeriods := w.Array("periods")
	rawProfile, profileErr := w.Walk("profile")
	// relativeTo only appears on closest (and sometimes within) results.
	rawRelativeTo := w.WalkDefault(nil, "relativeTo")

	if err := w.Err(); err != nil {
		return nil, err
	}
	if profileErr != nil {
		return nil, profileErr
	}

	periods := make([]AirQualityObservation, 0, len(rawPeriods))
	for _, elem := range rawPeriods {
		obs, err := deserializeAirQualityObservation(elem)
		if err != nil {
			return nil, err
		}
		periods = append(periods, obs)
	}

	profile, err := deserializeAirQualityProfile(rawProfile)
	if err != nil {
		return nil, err
	}
	relativeTo, err := deserializeRelativeTo(rawRelativeTo)
	if err != nil {
		return nil, err
	}

	return &AirQuality{
		ID:         id,
		Loc:        loc,
		Place:      place,
		Periods:    periods,
		Profile:    profile,
		RelativeTo: relativeTo,
	}, nil
}

// deserializeAirQualityObservation builds one observation from a
// periods element.
func deserializeAirQualityObservation(v jsonwalk.Value) (AirQualityObservation, error) {
	w := jsonwalk.NewWalker(v, "AirQualityObservation")

	timestampStr := w.String("dateTimeISO")
	method := w.String("method")
	obs := AirQualityObservation{
		AQI:      w.Int("aqi"),
		Category: w.String("category"),
		Color:    w.String("color"),
		Method:   method,
		Dominant: w.String("dominant"),
	}
	rawPollutants := w.Array("pollutants")
	if err := w.Err(); err != nil {
		return AirQualityObservation{}, err
	}

	timestamp, err := parseTimeISO(timestampStr)
	if err != nil {
		return AirQualityObservation{}, err
	}
	obs.Timestamp = timestamp

	obs.Pollutants = make([]AirQualityPollutant, 0, len(rawPollutants))
	for _, elem := range rawPollutants {
		p, err := deserializeAirQualityPollutant(elem, method)
		if err != nil {
			return AirQualityObservation{}, err
		}
		obs.Pollutants = append(obs.Pollutants, p)
	}
	return obs, nil
}

// deserializeAirQualityPollutant builds one pollutant entry. Some
// actions omit the per-pollutant method; it then defaults to the parent
// observation's method.
func deserializeAirQualityPollutant(v jsonwalk.Value, defaultMethod string) (AirQualityPollutant, error) {
	w := jsonwalk.NewWalker(v, "AirQualityPollutant")
	p := AirQualityPollutant{
		Type:      w.String("type"),
		Name:      w.String("name"),
		ValuePPB:  w.OptFloat("valuePPB"),
		ValueUGM3: w.OptFloat("valueUGM3"),
		AQI:       w.Int("aqi"),
		Category:  w.String("category"),
		Color:     w.String("color"),
		Method:    w.StringOr(defaultMethod, "method"),
	}
	if err := w.Err(); err != nil {
		return AirQualityPollutant{}, err
	}
	return p, nil
}

// deserializeAirQualityProfile builds the endpoint profile. The API
// sometimes returns a null stations property; it is normalized to an
// empty list for consistency.
func deserializeAirQualityProfile(v jsonwalk.Value) (AirQualityProfile, error) {
	w := jsonwalk.NewWalker(v, "AirQualityProfile")

	tz := w.String("tz")
	rawSources := w.Array("sources")
	rawStations, stationsErr := w.Walk("stations")
	if err := w.Err(); err != nil {
		return AirQualityProfile{}, err
	}
	if stationsErr != nil {
		return AirQualityProfile{}, stationsErr
	}

	sources := make([]AirQualitySource, 0, len(rawSources))
	sw := jsonwalk.NewWalker(nil, "AirQualitySource")
	for _, elem := range rawSources {
		sw.SetObject(elem, "AirQualitySource")
		sources = append(sources, AirQualitySource{Name: sw.String("name")})
		if err := sw.Err(); err != nil {
			return AirQualityProfile{}, err
		}
	}

	stations := []string{}
	if rawStations != nil {
		arr, ok := rawStations.(jsonwalk.Array)
		if !ok {
			return AirQualityProfile{}, &jsonwalk.TypeError{
				Label: "AirQualityProfile",
				Path:  []jsonwalk.Step{"stations"},
				Want:  "array or null",
				Got:   rawStations,
			}
		}
		list, err := stringList(arr, "AirQualityProfile")
		if err != nil {
			return AirQualityProfile{}, err
		}
		stations = list
	}

	return AirQualityProfile{
		Profile:  Profile{TZ: tz},
		Sources:  sources,
		Stations: stations,
	}, nil
}
