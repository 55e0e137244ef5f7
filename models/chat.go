package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatSession groups the messages of one visitor conversation. SessionID is
// the public identifier handed to the visitor's browser; MessageCount always
// equals the number of persisted messages for the session.
type ChatSession struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PortfolioID  string    `gorm:"size:63;not null;index" json:"portfolio_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID    string    `gorm:"size:64;uniqueIndex;not null" json:"session_id"`
	MessageCount int       `gorm:"default:0" json:"message_count"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	StartedAt    time.Time `gorm:"autoCreateTime" json:"started_at"`
	LastActivity time.Time `gorm:"autoUpdateTime" json:"last_activity"`

	Messages []ChatMessage `gorm:"foreignKey:SessionID;references:SessionID" json:"messages,omitempty"`
}

func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ChatMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PortfolioID    string    `gorm:"size:63;not null;index" json:"portfolio_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID      string    `gorm:"size:64;not null;index" json:"session_id"`
	Role           string    `gorm:"size:16;not null" json:"role"` // "user" | "assistant"
	Content        string    `gorm:"type:text;not null" json:"content"`
	IPAddress      string    `gorm:"size:64" json:"ip_address,omitempty"`
	UserAgent      string    `gorm:"size:512" json:"user_agent,omitempty"`
	ResponseTimeMs int64     `json:"response_time_ms,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
