package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cancha/db"
	"cancha/models"
	"cancha/rdx"
)

const channel = "reservation-events"

// Emit publishes a lifecycle event to Redis; the activity worker picks it
// up and records it. Failures are logged and dropped, never surfaced to
// the request path.
func Emit(ctx context.Context, action string, entityType, entityID, detail string) {
	event := models.Activity{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Detail:     detail,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartActivityWorker consumes lifecycle events and appends them to the
// activity collection. Run in its own goroutine from main.
func StartActivityWorker(ctx context.Context) {
	sub := rdx.Conn.Subscribe(ctx, channel)
	defer sub.Close()
	ch := sub.Channel()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	log.Println("[ActivityWorker] Listening for reservation events...")

	for msg := range ch {
		var event models.Activity
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[ActivityWorker] Failed to parse event: %v", err)
			continue
		}

		if _, err := db.ActivityCollection.InsertOne(ctx, event); err != nil {
			log.Printf("[ActivityWorker] Insert error: %v", err)
		}
	}
}
