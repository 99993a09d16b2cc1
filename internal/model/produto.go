package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is the catalog entry for anything that can be sold or raffled.
// EstoqueAtual is a maintained cache of the movement ledger's running sum;
// movimentacoes_estoque is the source of truth (see MovimentacaoEstoque).
type Produto struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome          string          `gorm:"uniqueIndex;not null"`
	ValorPadrao   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EstoqueAtual  int             `gorm:"not null;default:0"`
	EstoqueMinimo int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Produto) TableName() string { return "produtos" }
