package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement direction.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Business origin of a stock movement.
const (
	OrigemEstoqueInicial = "estoque_inicial"
	OrigemAjusteManual   = "ajuste_manual"
	OrigemVendaComanda   = "venda_comanda"
	OrigemEstornoComanda = "estorno_comanda"
	OrigemEntregaPremio  = "entrega_premio"
)

// MovimentacaoEstoque is one append-only ledger entry. Rows are immutable:
// corrections are new compensating movements, never edits or deletes.
type MovimentacaoEstoque struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClienteID  *uuid.UUID `gorm:"type:uuid;index"`
	Origem     string     `gorm:"not null;index"`
	Tipo       string     `gorm:"not null"` // entrada | saida
	Quantidade int        `gorm:"not null"` // always > 0; Tipo carries the sign
	Descricao  string
	CreatedAt  time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

// TableName overrides GORM's pluralization (movimentacao_estoques → movimentacoes_estoque).
func (MovimentacaoEstoque) TableName() string { return "movimentacoes_estoque" }
