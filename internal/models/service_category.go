package models

import (
	"time"

	"github.com/google/uuid"
)

// Conjunto fechado de categorias, somente leitura depois do seed.
type ServiceCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
