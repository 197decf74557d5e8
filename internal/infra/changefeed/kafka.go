package changefeed

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"scheduling-core/internal/usecase/realtime"

	"github.com/segmentio/kafka-go"
)

// KafkaFeed consumes the same change payloads from a Kafka topic. Producers
// key messages by provider id so each provider's changes stay ordered.
type KafkaFeed struct {
	reader  *kafka.Reader
	backoff time.Duration
}

type KafkaConfig struct {
	Brokers string
	GroupID string
	Topic   string
	Backoff time.Duration
}

func NewKafkaFeed(cfg KafkaConfig) *KafkaFeed {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  SplitBrokers(cfg.Brokers),
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}
	return &KafkaFeed{reader: reader, backoff: backoff}
}

func (f *KafkaFeed) Run(ctx context.Context, handle func(context.Context, realtime.ChangeEvent)) error {
	defer f.reader.Close()

	for {
		msg, err := f.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Error("kafka read error", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(f.backoff):
			}
			continue
		}

		ev, err := Decode(msg.Value)
		if err != nil {
			slog.Warn("dropping undecodable change message",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err)
			continue
		}
		handle(ctx, ev)
	}
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
