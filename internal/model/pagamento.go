package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pagamento is one payment applied to a comanda. The amount is bounded by
// the comanda's saldo restante at creation time.
type Pagamento struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComandaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Valor           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MetodoPagamento string          `gorm:"not null"` // Dinheiro | Pix | Cartão
	CreatedAt       time.Time
}

func (Pagamento) TableName() string { return "pagamentos" }
