package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/utils"
)

// StartKafkaConsumer drains the notification topic into InAppNotification
// rows. It runs for the life of the process; malformed messages are logged
// and skipped so one bad payload cannot wedge the consumer.
func StartKafkaConsumer(cfg *config.Config, svc Service) {
	if cfg.KafkaBrokers == "" || cfg.KafkaNotificationTopic == "" {
		log.Println("Kafka not configured, notification consumer disabled")
		return
	}

	reader := utils.NewNotificationReader(cfg)

	go func() {
		defer reader.Close()
		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("notification consumer: read failed: %v", err)
				return
			}

			var ev Event
			if err := json.Unmarshal(msg.Value, &ev); err != nil {
				log.Printf("notification consumer: bad payload: %v", err)
				continue
			}
			if err := svc.CreateFromEvent(ev); err != nil {
				log.Printf("notification consumer: could not persist %s: %v", ev.Type, err)
			}
		}
	}()
}
