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

func TestCriarProduto_EstoqueInicialViraMovimentacao(t *testing.T) {
	f := newFixture()

	resp, err := f.produtos.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:          "Heineken 600ml",
		ValorPadrao:   decimal.NewFromFloat(15),
		EstoqueAtual:  24,
		EstoqueMinimo: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, resp.EstoqueAtual)

	id := mustUUID(t, resp.ID)
	movs := f.movRepo.porOrigem(id, model.OrigemEstoqueInicial)
	require.Len(t, movs, 1)
	assert.Equal(t, model.TipoEntrada, movs[0].Tipo)
	assert.Equal(t, 24, movs[0].Quantidade)

	rec, err := f.estoque.Reconciliar(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, rec.Consistente)
}

func TestCriarProduto_SemEstoqueInicialNaoMovimenta(t *testing.T) {
	f := newFixture()

	resp, err := f.produtos.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:        "Água com gás",
		ValorPadrao: decimal.NewFromFloat(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.EstoqueAtual)
	assert.Empty(t, f.movRepo.movimentacoes)
}

func TestCriarProduto_NomeDuplicado(t *testing.T) {
	f := newFixture()
	f.seedProduto("Brahma Lata", 10, 0)

	_, err := f.produtos.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:        "brahma lata",
		ValorPadrao: decimal.NewFromFloat(6),
	})
	assert.ErrorIs(t, err, service.ErrProdutoJaExiste)
}

func TestAtualizarProduto_RecontagemGeraAjuste(t *testing.T) {
	f := newFixture()
	p := f.seedProduto("Skol Lata", 10, 0)

	// Physical count found 7 units: the 3 missing become a saída.
	novo := 7
	resp, err := f.produtos.Atualizar(context.Background(), p.ID, dto.AtualizarProdutoRequest{
		EstoqueAtual: &novo,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.EstoqueAtual)

	ajustes := f.movRepo.porOrigem(p.ID, model.OrigemAjusteManual)
	require.Len(t, ajustes, 1)
	assert.Equal(t, model.TipoSaida, ajustes[0].Tipo)
	assert.Equal(t, 3, ajustes[0].Quantidade)

	// Count up: found 12, delta of 5 recorded as entrada.
	novo = 12
	resp, err = f.produtos.Atualizar(context.Background(), p.ID, dto.AtualizarProdutoRequest{
		EstoqueAtual: &novo,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.EstoqueAtual)

	ajustes = f.movRepo.porOrigem(p.ID, model.OrigemAjusteManual)
	require.Len(t, ajustes, 2)
	assert.Equal(t, model.TipoEntrada, ajustes[1].Tipo)
	assert.Equal(t, 5, ajustes[1].Quantidade)
}

func TestAtualizarProduto_RecontagemIgualNaoMovimenta(t *testing.T) {
	f := newFixture()
	p := f.seedProduto("Corote", 8, 0)

	novo := 8
	_, err := f.produtos.Atualizar(context.Background(), p.ID, dto.AtualizarProdutoRequest{
		EstoqueAtual: &novo,
	})
	require.NoError(t, err)
	assert.Empty(t, f.movRepo.movimentacoes)
}

func TestAtualizarProduto_SomenteCatalogo(t *testing.T) {
	f := newFixture()
	p := f.seedProduto("Caipiroska", 4, 1)

	nome := "Caipiroska de limão"
	valor := decimal.NewFromFloat(22)
	resp, err := f.produtos.Atualizar(context.Background(), p.ID, dto.AtualizarProdutoRequest{
		Nome:        &nome,
		ValorPadrao: &valor,
	})
	require.NoError(t, err)
	assert.Equal(t, "Caipiroska de limão", resp.Nome)
	assert.Equal(t, "22", resp.ValorPadrao.String())
	assert.Equal(t, 4, resp.EstoqueAtual)
	assert.Empty(t, f.movRepo.movimentacoes)
}
