package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// ConsumeSearchEvents reads messages until ctx is canceled, decoding each into
// a SearchEvent. Undecodable messages are logged and skipped.
func (c *Consumer) ConsumeSearchEvents(ctx context.Context, handler func(context.Context, SearchEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event SearchEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode search event error: %v", err)
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}
