package repository

import (
	"context"
	"fmt"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	pkgkafka "FinGather/pkg/kafka"
)

// KafkaReindexSink publishes reindex events to Kafka. Consumers pick the
// event up and rebuild the search index over the staged documents.
type KafkaReindexSink struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaReindexSink creates the Kafka reindex sink.
func NewKafkaReindexSink(producer *pkgkafka.Producer, topic string) repository.ReindexSink {
	return &KafkaReindexSink{producer: producer, topic: topic}
}

func (s *KafkaReindexSink) Trigger(ctx context.Context, event models.ReindexEvent) (string, error) {
	if err := s.producer.Publish(ctx, s.topic, []byte(event.Ticker), event); err != nil {
		return "", fmt.Errorf("publish reindex event: %w", err)
	}
	return fmt.Sprintf("Reindex event published to %s", s.topic), nil
}

// Close releases the underlying producer.
func (s *KafkaReindexSink) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
