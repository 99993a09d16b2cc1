package dto

import "github.com/shopspring/decimal"

type CriarPagamentoRequest struct {
	ComandaID       string          `json:"comanda_id"       validate:"required,uuid"`
	Valor           decimal.Decimal `json:"valor"            validate:"required"`
	MetodoPagamento string          `json:"metodo_pagamento" validate:"required,min=2,max=40"`
}

type PagamentoResponse struct {
	ID              string          `json:"id"`
	ComandaID       string          `json:"comanda_id"`
	Valor           decimal.Decimal `json:"valor"`
	MetodoPagamento string          `json:"metodo_pagamento"`
	CreatedAt       string          `json:"created_at"`
}
