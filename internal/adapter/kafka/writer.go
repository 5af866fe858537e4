package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/aeris-weather-client/internal/collector"
	"github.com/couchcryptid/aeris-weather-client/internal/config"
)

// Writer produces observation records to a Kafka topic.
// It implements collector.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and writes a batch of observation records in a
// single WriteMessages call.
func (w *Writer) Publish(ctx context.Context, records []collector.Record) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Record into a Kafka message keyed by
// place so that each place's observations stay in partition order.
func serializeToMessage(record collector.Record) (kafkago.Message, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(record.Place),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "place", Value: []byte(record.Place)},
			{Key: "observed_at", Value: []byte(record.ObservedAt.Format(time.RFC3339))},
		},
	}, nil
}
