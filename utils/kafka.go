package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/gracechapel/church-management-backend/config"
)

var notificationWriter *kafka.Writer

// InitKafka sets up the shared writer for the notification topic. Kafka is
// optional: without brokers configured the publish calls become no-ops so a
// local instance can run without a broker.
func InitKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" || cfg.KafkaNotificationTopic == "" {
		log.Println("Kafka not configured, notification events disabled")
		return
	}

	notificationWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaNotificationTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Kafka writer ready for topic %s", cfg.KafkaNotificationTopic)
}

// PublishEvent writes a JSON-encoded notification event keyed by event type.
func PublishEvent(ctx context.Context, eventType string, payload interface{}) error {
	if notificationWriter == nil {
		return nil
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return notificationWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: value,
	})
}

// NewNotificationReader builds a consumer for the notification topic.
func NewNotificationReader(cfg *config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(cfg.KafkaBrokers, ","),
		Topic:   cfg.KafkaNotificationTopic,
		GroupID: "church-backend-notifications",
	})
}
