package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	EventContactReceived = "contact_received"
	EventChatActivity    = "chat_activity"
)

// InboxEvent is pushed to the owner's dashboard when a visitor submits the
// contact form or talks to the chatbot.
type InboxEvent struct {
	Type        string `json:"type"`
	PortfolioID string `json:"portfolio_id"`
	RefID       string `json:"ref_id,omitempty"` // application or session id
}

// Events fans inbox events out through Redis pub/sub, one channel per owner.
// Publishing is best effort and a nil client is a no-op, so audit writes
// never depend on Redis being up.
type Events struct {
	rdb *redis.Client
}

func NewEvents(rdb *redis.Client) *Events {
	return &Events{rdb: rdb}
}

func inboxChannel(userID uuid.UUID) string {
	return "inbox:user:" + userID.String()
}

func (e *Events) Publish(ctx context.Context, userID uuid.UUID, ev InboxEvent) {
	if e == nil || e.rdb == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := e.rdb.Publish(ctx, inboxChannel(userID), string(data)).Err(); err != nil {
		log.Printf("[Events] publish failed for %s: %v", userID, err)
	}
}

// Subscribe opens the owner's inbox channel. Returns nil when Redis is not
// configured; the caller must handle that.
func (e *Events) Subscribe(ctx context.Context, userID uuid.UUID) *redis.PubSub {
	if e == nil || e.rdb == nil {
		return nil
	}
	return e.rdb.Subscribe(ctx, inboxChannel(userID))
}
