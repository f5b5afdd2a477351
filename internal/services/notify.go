package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// KafkaNotifier publishes user notifications to a Kafka topic. Delivery is
// fire-and-forget: failures are logged, never returned.
type KafkaNotifier struct {
	writer KafkaWriter
}

// NewKafkaNotifier creates a notifier over the given Kafka writer.
func NewKafkaNotifier(writer KafkaWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

// Success publishes a success notification for the user.
func (n *KafkaNotifier) Success(ctx context.Context, userID uuid.UUID, message string) {
	n.publish(ctx, userID, "success", message)
}

// Error publishes an error notification for the user.
func (n *KafkaNotifier) Error(ctx context.Context, userID uuid.UUID, message string) {
	n.publish(ctx, userID, "error", message)
}

func (n *KafkaNotifier) publish(ctx context.Context, userID uuid.UUID, level, message string) {
	if n.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping notification", "userID", userID, "message", message)
		return
	}

	event := models.NotificationEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Level:     level,
		Message:   message,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification for Kafka", "userID", userID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish notification to Kafka", "userID", userID, "error", err)
	}
}
