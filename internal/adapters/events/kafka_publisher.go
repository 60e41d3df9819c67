package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher announces committed postings on a Kafka topic. Messages are keyed by
// reference so every event of one reference group lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

var _ portssvc.PostingPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error(fmt.Sprintf(msg, args...), slog.String("topic", topic))
		}),
	}
	return &KafkaPublisher{writer: w, topic: topic}
}

// PublishPosting writes one JSON message for event.
func (p *KafkaPublisher) PublishPosting(ctx context.Context, event domain.PostingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode posting event %s: %w", event.EventID, err)
	}

	msg := kafka.Message{
		Key:   []byte(string(event.ReferenceType) + ":" + strconv.FormatInt(event.ReferenceID, 10)),
		Value: payload,
		Time:  event.PostedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "branch_id", Value: []byte(strconv.FormatInt(event.BranchID, 10))},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish posting event to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
