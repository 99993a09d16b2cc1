package service_test

import (
	"context"
	"testing"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbrirComanda(t *testing.T) {
	f := newFixture()
	cliente := f.seedCliente("Helena")

	resp, err := f.comandas.Abrir(context.Background(), dto.AbrirComandaRequest{
		ClienteID: cliente.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComandaAberta, resp.Status)
	assert.True(t, resp.ValorTotal.IsZero())
	assert.True(t, resp.SaldoRestante.IsZero())
	assert.Equal(t, "Helena", resp.ClienteNome)
}

func TestAbrirComanda_ClienteInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.comandas.Abrir(context.Background(), dto.AbrirComandaRequest{
		ClienteID: "0c9a7c52-0000-4000-8000-000000000000",
	})
	assert.ErrorIs(t, err, service.ErrClienteNaoEncontrado)
}

func TestFecharComanda_ComSaldoRejeita(t *testing.T) {
	f := newFixture()
	cliente := f.seedCliente("Igor")
	comanda := f.seedComandaAberta(cliente.ID)
	lancar100(t, f, comanda.ID.String())

	_, err := f.pagamentos.Criar(context.Background(), dto.CriarPagamentoRequest{
		ComandaID:       comanda.ID.String(),
		Valor:           decimal.NewFromFloat(40),
		MetodoPagamento: "Pix",
	})
	require.NoError(t, err)

	_, err = f.comandas.Fechar(context.Background(), comanda.ID)
	assert.ErrorIs(t, err, service.ErrSaldoEmAberto)
	assert.Equal(t, model.ComandaAberta, f.comandaRepo.comandas[comanda.ID].Status)
}

func TestFecharComanda_AposQuitar(t *testing.T) {
	f := newFixture()
	cliente := f.seedCliente("Júlia")
	comanda := f.seedComandaAberta(cliente.ID)
	lancar100(t, f, comanda.ID.String())

	for _, valor := range []float64{40, 60} {
		_, err := f.pagamentos.Criar(context.Background(), dto.CriarPagamentoRequest{
			ComandaID:       comanda.ID.String(),
			Valor:           decimal.NewFromFloat(valor),
			MetodoPagamento: "Dinheiro",
		})
		require.NoError(t, err)
	}

	resp, err := f.comandas.Fechar(context.Background(), comanda.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ComandaFechada, resp.Status)

	// Closing twice is rejected: Fechada is terminal.
	_, err = f.comandas.Fechar(context.Background(), comanda.ID)
	assert.ErrorIs(t, err, service.ErrComandaFechada)
}

func TestRecalcular_Idempotente(t *testing.T) {
	f := newFixture()
	cliente := f.seedCliente("Kleber")
	comanda := f.seedComandaAberta(cliente.ID)
	lancar100(t, f, comanda.ID.String())

	primeiro, err := f.comandas.Recalcular(context.Background(), comanda.ID)
	require.NoError(t, err)
	segundo, err := f.comandas.Recalcular(context.Background(), comanda.ID)
	require.NoError(t, err)

	assert.True(t, primeiro.ValorTotal.Equal(segundo.ValorTotal))
	assert.True(t, primeiro.ValorPago.Equal(segundo.ValorPago))
	assert.True(t, primeiro.SaldoRestante.Equal(segundo.SaldoRestante))
}

func TestRecalcular_SaldoNuncaNegativo(t *testing.T) {
	f := newFixture()
	cliente := f.seedCliente("Lia")
	comanda := f.seedComandaAberta(cliente.ID)

	// Payment rows exceeding the billed total (e.g. after a lançamento was
	// reversed) must clamp the balance at zero instead of going negative.
	f.pagamentoRepo.pagamentos[comanda.ID] = &model.Pagamento{
		ID:              comanda.ID,
		ComandaID:       comanda.ID,
		Valor:           decimal.NewFromFloat(50),
		MetodoPagamento: "Pix",
	}

	totais, err := f.comandas.Recalcular(context.Background(), comanda.ID)
	require.NoError(t, err)
	assert.True(t, totais.ValorTotal.IsZero())
	assert.Equal(t, "50", totais.ValorPago.String())
	assert.True(t, totais.SaldoRestante.IsZero())
}

func TestListarComandas_PadraoSomenteAbertas(t *testing.T) {
	f := newFixture()
	cliente := f.seedCliente("Marina")
	aberta := f.seedComandaAberta(cliente.ID)
	fechada := f.seedComandaAberta(cliente.ID)
	fechada.Status = model.ComandaFechada

	resp, err := f.comandas.Listar(context.Background(), dto.ComandaFilter{})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, aberta.ID.String(), resp[0].ID)

	todos, err := f.comandas.Listar(context.Background(), dto.ComandaFilter{Status: "todos"})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
