package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-textbook-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler is a function that processes an event.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber handles listening for events from NATS.
type Subscriber struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// NewSubscriber creates a new NATS subscriber.
func NewSubscriber(url string) (*Subscriber, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Subscriber{nc: nc, js: js}, nil
}

// Subscribe registers a handler for a subject pattern using a durable
// consumer so no messages are lost across restarts.
func (s *Subscriber) Subscribe(subject string, durableName string, handler EventHandler) error {
	ctx := context.Background()

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, streamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	_, err = consumer.Consume(func(msg jetstream.Msg) {
		var payload map[string]interface{}
		if err := json.Unmarshal(msg.Data(), &payload); err != nil {
			log.Printf("Error unmarshalling event data: %v", err)
			msg.Nak()
			return
		}

		event := events.BaseEvent{
			Type:       strings.TrimPrefix(msg.Subject(), subjectPrefix+"."),
			Data:       payload,
			OccurredAt: time.Now(),
		}

		if err := handler(context.Background(), event); err != nil {
			log.Printf("Handler failed for event %s: %v", msg.Subject(), err)
			msg.Nak()
			return
		}

		msg.Ack()
	})

	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	log.Printf("Subscribed to %s with durable %s", subject, durableName)
	return nil
}

// Close closes the connection.
func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
