package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/onegt/chrms-backend/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Notification is the payload pushed to a connected client.
type Notification struct {
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// NotificationService fans out notifications through Redis pub/sub. Each
// recipient has one channel keyed by their lowercased email, so delivery
// works across server instances.
type NotificationService struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(rdb *redis.Client, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		rdb: rdb,
		log: log.With().Str("component", "notification_service").Logger(),
	}
}

// Publish sends a notification to the recipient's channel. Losing a
// notification is tolerable, so failures are logged and swallowed.
func (s *NotificationService) Publish(ctx context.Context, recipientEmail string, n Notification) {
	if n.SentAt.IsZero() {
		n.SentAt = time.Now()
	}

	payload, err := json.Marshal(n)
	if err != nil {
		s.log.Error().Err(err).Msg("marshal notification")
		return
	}

	channel := config.CacheKey.NotificationChannel(recipientEmail)
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Error().Err(err).Str("channel", channel).Msg("publish notification")
	}
}

// Subscribe opens a pub/sub subscription for one recipient. The caller owns
// the returned subscription and must Close it.
func (s *NotificationService) Subscribe(ctx context.Context, recipientEmail string) *redis.PubSub {
	return s.rdb.Subscribe(ctx, config.CacheKey.NotificationChannel(recipientEmail))
}

// InterviewScheduledNotification builds the message sent to an interviewer
// when a slot is booked against them.
func InterviewScheduledNotification(candidateName string, scheduledAt time.Time) Notification {
	return Notification{
		Type:    "interview_scheduled",
		Title:   "Interview scheduled",
		Message: fmt.Sprintf("Interview with %s on %s", candidateName, scheduledAt.Format("Jan 2, 2006 at 3:04 PM")),
	}
}
