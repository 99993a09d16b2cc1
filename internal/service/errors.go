package service

import "errors"

// Domain errors surfaced by the reconciliation workflows. Handlers map them
// to HTTP statuses; services return them verbatim, never wrapped in
// transport concerns.
var (
	ErrProdutoNaoEncontrado    = errors.New("produto não encontrado")
	ErrClienteNaoEncontrado    = errors.New("cliente não encontrado")
	ErrComandaNaoEncontrada    = errors.New("comanda não encontrada")
	ErrLancamentoNaoEncontrado = errors.New("lançamento não encontrado")
	ErrPagamentoNaoEncontrado  = errors.New("pagamento não encontrado")
	ErrPremioNaoEncontrado     = errors.New("prêmio não encontrado")

	ErrProdutoJaExiste = errors.New("já existe um produto com este nome")

	// Stock ledger
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")

	// Comanda lifecycle
	ErrComandaFechada = errors.New("comanda fechada")
	ErrSaldoEmAberto  = errors.New("não é possível fechar a comanda pois há saldo em aberto")

	// Payment validation
	ErrComandaQuitada   = errors.New("esta comanda já está quitada")
	ErrValorExcedeSaldo = errors.New("o valor pago é maior que o saldo devedor")
	ErrValorInvalido    = errors.New("valor de pagamento inválido")

	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)
