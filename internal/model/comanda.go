package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Comanda lifecycle. Fechada is terminal.
const (
	ComandaAberta  = "Aberta"
	ComandaFechada = "Fechada"
)

// Comanda is a customer session (open bill). ValorTotal, ValorPago and
// SaldoRestante are derived fields: they are recomputed from the live sets
// of lançamentos and pagamentos after every mutation, never incremented.
type Comanda struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status        string          `gorm:"not null;default:'Aberta';index"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ValorPago     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SaldoRestante decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cliente     *Cliente     `gorm:"foreignKey:ClienteID"`
	Lancamentos []Lancamento `gorm:"foreignKey:ComandaID;constraint:OnDelete:CASCADE"`
	Pagamentos  []Pagamento  `gorm:"foreignKey:ComandaID;constraint:OnDelete:CASCADE"`
}

func (Comanda) TableName() string { return "comandas" }
