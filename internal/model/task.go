package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description *string
	Completed   bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
