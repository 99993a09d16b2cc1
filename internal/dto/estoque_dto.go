package dto

// RegistrarMovimentacaoRequest appends one movement to the stock ledger.
type RegistrarMovimentacaoRequest struct {
	ProdutoID  string  `json:"produto_id" validate:"required,uuid"`
	ClienteID  *string `json:"cliente_id" validate:"omitempty,uuid"`
	Origem     string  `json:"origem"     validate:"required,oneof=estoque_inicial ajuste_manual venda_comanda estorno_comanda entrega_premio"`
	Tipo       string  `json:"tipo"       validate:"required,oneof=entrada saida"`
	Quantidade int     `json:"quantidade" validate:"required,gt=0"`
	Descricao  string  `json:"descricao"`
}

type MovimentacaoFilter struct {
	ProdutoID  string `form:"produto_id"  validate:"omitempty,uuid"`
	ClienteID  string `form:"cliente_id"  validate:"omitempty,uuid"`
	Origem     string `form:"origem"`
	Tipo       string `form:"tipo"        validate:"omitempty,oneof=entrada saida"`
	DataInicio string `form:"data_inicio"` // YYYY-MM-DD
	DataFim    string `form:"data_fim"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type MovimentacaoResponse struct {
	ID          string  `json:"id"`
	ProdutoID   string  `json:"produto_id"`
	ProdutoNome string  `json:"produto_nome,omitempty"`
	ClienteID   *string `json:"cliente_id"`
	ClienteNome *string `json:"cliente_nome,omitempty"`
	Origem      string  `json:"origem"`
	Tipo        string  `json:"tipo"`
	Quantidade  int     `json:"quantidade"`
	Descricao   string  `json:"descricao"`
	CreatedAt   string  `json:"created_at"`
}

type MovimentacaoListResponse struct {
	Data  []MovimentacaoResponse `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// ReconciliacaoResponse compares a product's running stock count against
// the signed sum of its ledger movements.
type ReconciliacaoResponse struct {
	ProdutoID    string `json:"produto_id"`
	EstoqueAtual int    `json:"estoque_atual"`
	SomaLedger   int    `json:"soma_ledger"`
	Consistente  bool   `json:"consistente"`
}

// EstoqueBaixoResponse is one row of the low-stock report.
type EstoqueBaixoResponse struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	EstoqueAtual  int    `json:"estoque_atual"`
	EstoqueMinimo int    `json:"estoque_minimo"`
}
