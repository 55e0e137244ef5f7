package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactStatusSent    = "sent"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// ContactResponse is the audit record of one submitted contact-form message.
// It is written once by the contact handler; only Status changes afterwards,
// when the owner marks it read or replied.
type ContactResponse struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID string    `gorm:"size:64;uniqueIndex;not null" json:"application_id"`
	PortfolioID   string    `gorm:"size:63;not null;index" json:"portfolio_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Subject       string    `gorm:"size:255;not null" json:"subject"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	Status        string    `gorm:"size:16;not null;default:'sent'" json:"status"`
	IPAddress     string    `gorm:"size:64" json:"ip_address,omitempty"`
	UserAgent     string    `gorm:"size:512" json:"user_agent,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *ContactResponse) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ValidContactStatus reports whether s is one of the allowed status values.
func ValidContactStatus(s string) bool {
	return s == ContactStatusSent || s == ContactStatusRead || s == ContactStatusReplied
}
