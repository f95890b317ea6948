package events

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaGo "github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer *kafkaGo.Writer
}

// NewKafkaPublisher writes events to topic, keyed by entity ID so every
// event for one product or order lands on the same partition.
func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return &kafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkaGo.Hash{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return k.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(event.Key),
		Value: payload,
		Headers: []kafkaGo.Header{
			{Key: "action", Value: []byte(event.Action)},
		},
	})
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}
