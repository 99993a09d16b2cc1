package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is the customer registry entry referenced by comandas,
// stock movement attribution and raffle prizes.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Telefone  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
