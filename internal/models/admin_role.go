package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole is the access-control record for one authenticated identity.
// Rows are created out-of-band (or seeded at startup); no UI writes them.
// A user with no row has no role and therefore no admin access.
type AdminRole struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdminRole) TableName() string { return "admins" }
