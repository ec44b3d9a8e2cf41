package kafkaadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"mesa-promote/internal/core/domain"
)

// NewWriter returns a writer for topic. Messages with the same key land on
// the same partition.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

// NewReader returns a consumer-group reader for topic. Offsets are committed
// explicitly after a batch is handled.
func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})
}

// Queue publishes update-queue messages to kafka.
type Queue struct {
	writer *kafka.Writer
}

// NewQueue returns a queue producer on writer.
func NewQueue(writer *kafka.Writer) *Queue {
	return &Queue{writer: writer}
}

func (q *Queue) Publish(ctx context.Context, msg domain.Message) error {
	m, err := encodeMessage(msg)
	if err != nil {
		return err
	}
	if err = q.writer.WriteMessages(ctx, m); err != nil {
		return fmt.Errorf("publish %s message: %w", msg.Kind, err)
	}
	return nil
}

// encodeMessage keys link messages by link so they stay ordered on one
// partition.
func encodeMessage(msg domain.Message) (kafka.Message, error) {
	value, err := json.Marshal(msg)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s message: %w", msg.Kind, err)
	}
	key := string(msg.Kind)
	if msg.LinkID != 0 {
		key = strconv.FormatInt(msg.LinkID, 10)
	}
	return kafka.Message{Key: []byte(key), Value: value}, nil
}

func decodeMessage(m kafka.Message) (domain.Message, error) {
	var msg domain.Message
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return domain.Message{}, fmt.Errorf("decode queue message: %w", err)
	}
	if msg.Kind != domain.MessageRunAll && msg.Kind != domain.MessageLinkChanged {
		return domain.Message{}, fmt.Errorf("%w: queue message kind %q", domain.ErrInvalidData, msg.Kind)
	}
	return msg, nil
}
