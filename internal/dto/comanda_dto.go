package dto

import "github.com/shopspring/decimal"

type AbrirComandaRequest struct {
	ClienteID string `json:"cliente_id" validate:"required,uuid"`
}

type ComandaFilter struct {
	ClienteID  string `form:"cliente_id" validate:"omitempty,uuid"`
	Status     string `form:"status"`   // Aberta (default) | Fechada | todos
	DataInicio string `form:"data_inicio"`
	DataFim    string `form:"data_fim"`
}

type ComandaResponse struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"cliente_id"`
	ClienteNome   string          `json:"cliente_nome,omitempty"`
	Status        string          `json:"status"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	ValorPago     decimal.Decimal `json:"valor_pago"`
	SaldoRestante decimal.Decimal `json:"saldo_restante"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// TotaisComanda is the result of one totals recomputation.
type TotaisComanda struct {
	ValorTotal    decimal.Decimal `json:"valor_total"`
	ValorPago     decimal.Decimal `json:"valor_pago"`
	SaldoRestante decimal.Decimal `json:"saldo_restante"`
}
