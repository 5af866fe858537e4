// Package collector polls the Aeris API for air quality observations
// and publishes them downstream. It is the consuming-application side
// of the client library: one cycle queries each configured place with
// the closest action and forwards the latest observation per place.
package collector

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/aeris-weather-client/aeris"
	"github.com/couchcryptid/aeris-weather-client/internal/observability"
)

// Record is one air quality observation snapshot destined for the sink
// topic.
type Record struct {
	Place       string    `json:"place"`
	StationID   string    `json:"station_id,omitempty"`
	Lat         float64   `json:"lat"`
	Long        float64   `json:"long"`
	AQI         int       `json:"aqi"`
	Category    string    `json:"category"`
	Dominant    string    `json:"dominant"`
	Method      string    `json:"method"`
	TZ          string    `json:"tz,omitempty"`
	ObservedAt  time.Time `json:"observed_at"`
	CollectedAt time.Time `json:"collected_at"`
}

// AirQualityAPI is the slice of the Aeris client the collector uses.
type AirQualityAPI interface {
	Closest(ctx context.Context, place string, opts *aeris.QueryOptions) (*aeris.APIResponse[*aeris.AirQuality], error)
}

// Publisher writes records to the destination.
type Publisher interface {
	Publish(ctx context.Context, records []Record) error
}

// Collector runs the poll-and-publish loop.
type Collector struct {
	api       AirQualityAPI
	publisher Publisher
	places    []string
	interval  time.Duration
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Collector. clock may be a fake in tests; pass
// clockwork.NewRealClock() in production.
func New(api AirQualityAPI, publisher Publisher, places []string, interval time.Duration, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Collector {
	return &Collector{
		api:       api,
		publisher: publisher,
		places:    places,
		interval:  interval,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once at least one cycle has completed.
func (c *Collector) CheckReadiness(_ context.Context) error {
	if !c.ready.Load() {
		return errors.New("collector has not completed a polling cycle yet")
	}
	return nil
}

// Run polls immediately, then on every interval tick until ctx is
// cancelled.
func (c *Collector) Run(ctx context.Context) error {
	c.metrics.CollectorRunning.Set(1)
	defer c.metrics.CollectorRunning.Set(0)

	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	c.collectOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			c.collectOnce(ctx)
		}
	}
}

// collectOnce queries every configured place and publishes whatever
// succeeded. Per-place failures are logged and counted, not fatal: one
// unavailable place must not starve the others.
func (c *Collector) collectOnce(ctx context.Context) {
	records := make([]Record, 0, len(c.places))
	for _, place := range c.places {
		record, ok := c.collectPlace(ctx, place)
		if ok {
			records = append(records, record)
		}
	}

	if len(records) > 0 {
		if err := c.publisher.Publish(ctx, records); err != nil {
			c.metrics.PublishErrors.Inc()
			c.logger.Error("publish failed", "records", len(records), "error", err)
			return
		}
		c.metrics.ObservationsPublished.Add(float64(len(records)))
	}

	c.metrics.PollCycles.Inc()
	c.ready.Store(true)
	c.logger.Info("poll cycle complete", "places", len(c.places), "published", len(records))
}

func (c *Collector) collectPlace(ctx context.Context, place string) (Record, bool) {
	start := c.clock.Now()
	resp, err := c.api.Closest(ctx, place, &aeris.QueryOptions{Limit: 1})
	c.metrics.APIRequestDuration.WithLabelValues("closest").Observe(c.clock.Since(start).Seconds())

	if err != nil {
		var apiErr *aeris.APIError
		if errors.As(err, &apiErr) {
			c.metrics.APIRequests.WithLabelValues("closest", "api_error").Inc()
			c.logger.Warn("aeris reported an error", "place", place, "code", apiErr.Code, "description", apiErr.Description)
		} else {
			c.metrics.APIRequests.WithLabelValues("closest", "error").Inc()
			c.logger.Error("aeris request failed", "place", place, "error", err)
		}
		return Record{}, false
	}
	c.metrics.APIRequests.WithLabelValues("closest", "success").Inc()

	if len(resp.Items) == 0 || len(resp.Items[0].Periods) == 0 {
		c.logger.Warn("no observation data", "place", place)
		return Record{}, false
	}

	model := resp.Items[0]
	obs := model.Periods[0]
	record := Record{
		Place:       place,
		Lat:         model.Loc.Lat,
		Long:        model.Loc.Long,
		AQI:         obs.AQI,
		Category:    obs.Category,
		Dominant:    obs.Dominant,
		Method:      obs.Method,
		TZ:          model.Profile.TZ,
		ObservedAt:  obs.Timestamp,
		CollectedAt: c.clock.Now().UTC(),
	}
	if model.ID != nil {
		record.StationID = *model.ID
	}
	return record, true
}
