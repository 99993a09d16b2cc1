package dto

type CriarPremioRequest struct {
	ProdutoID  string  `json:"produto_id" validate:"required,uuid"`
	ClienteID  *string `json:"cliente_id" validate:"omitempty,uuid"`
	Quantidade int     `json:"quantidade" validate:"required,gt=0"`
}

type EntregarPremioRequest struct {
	StatusEntrega string `json:"status_entrega" validate:"required,oneof=pendente entregue"`
}

type PremioResponse struct {
	ID            string  `json:"id"`
	ProdutoID     string  `json:"produto_id"`
	ProdutoNome   string  `json:"produto_nome,omitempty"`
	ClienteID     *string `json:"cliente_id"`
	Quantidade    int     `json:"quantidade"`
	StatusEntrega string  `json:"status_entrega"`
	CreatedAt     string  `json:"created_at"`
}
