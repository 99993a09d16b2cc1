package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome          string          `json:"nome"           validate:"required,min=2,max=120"`
	ValorPadrao   decimal.Decimal `json:"valor_padrao"   validate:"required,gt=0"`
	EstoqueAtual  int             `json:"estoque_atual"  validate:"min=0"`
	EstoqueMinimo int             `json:"estoque_minimo" validate:"min=0"`
}

// AtualizarProdutoRequest carries a full re-count: estoque_atual is the new
// counted quantity, not a delta. The service turns the difference into a
// ledger movement.
type AtualizarProdutoRequest struct {
	Nome          *string          `json:"nome"           validate:"omitempty,min=2,max=120"`
	ValorPadrao   *decimal.Decimal `json:"valor_padrao"   validate:"omitempty,gt=0"`
	EstoqueAtual  *int             `json:"estoque_atual"  validate:"omitempty,min=0"`
	EstoqueMinimo *int             `json:"estoque_minimo" validate:"omitempty,min=0"`
}

type ProdutoFilter struct {
	Nome  string `form:"nome"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	ValorPadrao   decimal.Decimal `json:"valor_padrao"`
	EstoqueAtual  int             `json:"estoque_atual"`
	EstoqueMinimo int             `json:"estoque_minimo"`
}

type ProdutoListResponse struct {
	Data  []ProdutoResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
