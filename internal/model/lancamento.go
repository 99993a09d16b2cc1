package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lancamento is one line item billed to a comanda. ValorLancado is the unit
// price actually charged, which may differ from the catalog's ValorPadrao.
// Creation debits stock; deletion is a hard delete preceded by a
// compensating entrada movement.
type Lancamento struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComandaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ValorLancado decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantidade   int             `gorm:"not null"`
	CreatedAt    time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

// TableName overrides GORM's pluralization (lancamentos → lancamentos_produtos).
func (Lancamento) TableName() string { return "lancamentos_produtos" }
