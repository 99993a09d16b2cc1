package dto

import "github.com/shopspring/decimal"

type CriarLancamentoRequest struct {
	ComandaID    string          `json:"comanda_id"    validate:"required,uuid"`
	ProdutoID    string          `json:"produto_id"    validate:"required,uuid"`
	ValorLancado decimal.Decimal `json:"valor_lancado" validate:"required,gt=0"`
	Quantidade   int             `json:"quantidade"    validate:"required,gt=0"`
}

type LancamentoResponse struct {
	ID           string          `json:"id"`
	ComandaID    string          `json:"comanda_id"`
	ProdutoID    string          `json:"produto_id"`
	ProdutoNome  string          `json:"produto_nome,omitempty"`
	ValorLancado decimal.Decimal `json:"valor_lancado"`
	Quantidade   int             `json:"quantidade"`
	CreatedAt    string          `json:"created_at"`
}
