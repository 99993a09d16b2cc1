package model

import (
	"time"

	"github.com/google/uuid"
)

// Prize delivery status.
const (
	EntregaPendente = "pendente"
	EntregaEntregue = "entregue"
)

// Premio is a raffle prize pending delivery to a winner. Marking it
// entregue debits the product's stock exactly like a sale would; the
// status is not changed when the debit fails.
type Premio struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClienteID     *uuid.UUID `gorm:"type:uuid;index"` // winner, when known
	Quantidade    int        `gorm:"not null"`
	StatusEntrega string     `gorm:"not null;default:'pendente'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (Premio) TableName() string { return "premios" }
