package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Portfolio holds one owner's entire site content as a single JSON document.
// PortfolioID is the human-chosen public slug used for subdomain lookup and
// must stay unique across all rows; UserID is unique so each owner has
// exactly one document.
type Portfolio struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	UserEmail   string         `gorm:"size:255;not null" json:"user_email"`
	UserName    string         `gorm:"size:255" json:"user_name"`
	PortfolioID string         `gorm:"size:63;uniqueIndex;not null" json:"portfolio_id"`
	Data        datatypes.JSON `gorm:"not null;default:'{}'" json:"data"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
