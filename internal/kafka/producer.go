package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// ReservationEvent is the payload published on every lifecycle change.
// Type is one of reservation_created / reservation_cancelled.
type ReservationEvent struct {
	Type           string `json:"type"`
	ReservationID  string `json:"reservation_id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	TravelDate     string `json:"travel_date"`
	SuiteCategory  string `json:"suite_category"`
	SuiteID        string `json:"suite_id"`
	Phone          string `json:"phone"`
	PassengerCount int    `json:"passenger_count"`
	TotalCents     int64  `json:"total_cents"`
	Status         string `json:"status"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
