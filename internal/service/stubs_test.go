package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"
	"github.com/rafaelmsj/commandSystem/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", s, err)
	}
	return id
}

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProdutoRepo is an in-memory ProdutoRepository. DB() returns nil so that
// services run their workflows without a real transaction.
type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) FindByNome(_ context.Context, nome string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if strings.EqualFold(p.Nome, nome) {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProdutoRepo) List(_ context.Context, _ dto.ProdutoFilter) ([]model.Produto, int64, error) {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	if _, ok := r.produtos[p.ID]; !ok {
		return errNotFound
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) EstoqueBaixo(_ context.Context) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.EstoqueAtual <= p.EstoqueMinimo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProdutoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProdutoRepo) UpdateEstoqueTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.produtos[id]
	if !ok {
		return errNotFound
	}
	p.EstoqueAtual += delta
	return nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// stubMovRepo records ledger appends for assertion.
type stubMovRepo struct {
	movimentacoes []model.MovimentacaoEstoque
}

func (r *stubMovRepo) Create(_ context.Context, m *model.MovimentacaoEstoque) error {
	return r.CreateTx(nil, m)
}

func (r *stubMovRepo) CreateTx(_ *gorm.DB, m *model.MovimentacaoEstoque) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimentacoes = append(r.movimentacoes, *m)
	return nil
}

func (r *stubMovRepo) List(_ context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error) {
	var out []model.MovimentacaoEstoque
	for _, m := range r.movimentacoes {
		if filter.ProdutoID != "" && m.ProdutoID.String() != filter.ProdutoID {
			continue
		}
		if filter.Origem != "" && m.Origem != filter.Origem {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMovRepo) SumByProduto(_ context.Context, produtoID uuid.UUID) (int, error) {
	sum := 0
	for _, m := range r.movimentacoes {
		if m.ProdutoID != produtoID {
			continue
		}
		if m.Tipo == model.TipoEntrada {
			sum += m.Quantidade
		} else {
			sum -= m.Quantidade
		}
	}
	return sum, nil
}

// porOrigem returns the movements recorded for a product with a given origem.
func (r *stubMovRepo) porOrigem(produtoID uuid.UUID, origem string) []model.MovimentacaoEstoque {
	var out []model.MovimentacaoEstoque
	for _, m := range r.movimentacoes {
		if m.ProdutoID == produtoID && m.Origem == origem {
			out = append(out, m)
		}
	}
	return out
}

var _ repository.MovimentacaoEstoqueRepository = (*stubMovRepo)(nil)

// stubClienteRepo is an in-memory ClienteRepository.
type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, search string) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if search == "" || strings.Contains(strings.ToLower(c.Nome), strings.ToLower(search)) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubComandaRepo derives the totals sums from its sibling lancamento and
// pagamento stubs, mirroring what the SQL aggregates do in production.
type stubComandaRepo struct {
	comandas    map[uuid.UUID]*model.Comanda
	lancamentos *stubLancamentoRepo
	pagamentos  *stubPagamentoRepo
}

func newStubComandaRepo(l *stubLancamentoRepo, p *stubPagamentoRepo) *stubComandaRepo {
	return &stubComandaRepo{
		comandas:    make(map[uuid.UUID]*model.Comanda),
		lancamentos: l,
		pagamentos:  p,
	}
}

func (r *stubComandaRepo) Create(_ context.Context, c *model.Comanda) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.comandas[c.ID] = c
	return nil
}

func (r *stubComandaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Comanda, error) {
	c, ok := r.comandas[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubComandaRepo) List(_ context.Context, filter dto.ComandaFilter) ([]model.Comanda, error) {
	status := filter.Status
	if status == "" {
		status = model.ComandaAberta
	}
	var out []model.Comanda
	for _, c := range r.comandas {
		if status != "todos" && c.Status != status {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubComandaRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	return r.UpdateStatusTx(nil, id, status)
}

func (r *stubComandaRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Comanda, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubComandaRepo) SumLancamentosTx(_ *gorm.DB, comandaID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.lancamentos.lancamentos {
		if l.ComandaID == comandaID {
			total = total.Add(l.ValorLancado.Mul(decimal.NewFromInt(int64(l.Quantidade))))
		}
	}
	return total, nil
}

func (r *stubComandaRepo) SumPagamentosTx(_ *gorm.DB, comandaID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.pagamentos.pagamentos {
		if p.ComandaID == comandaID {
			total = total.Add(p.Valor)
		}
	}
	return total, nil
}

func (r *stubComandaRepo) UpdateTotaisTx(_ *gorm.DB, id uuid.UUID, totais dto.TotaisComanda) error {
	c, ok := r.comandas[id]
	if !ok {
		return errNotFound
	}
	c.ValorTotal = totais.ValorTotal
	c.ValorPago = totais.ValorPago
	c.SaldoRestante = totais.SaldoRestante
	return nil
}

func (r *stubComandaRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	c, ok := r.comandas[id]
	if !ok {
		return errNotFound
	}
	c.Status = status
	return nil
}

func (r *stubComandaRepo) DB() *gorm.DB { return nil }

var _ repository.ComandaRepository = (*stubComandaRepo)(nil)

// stubLancamentoRepo stores rows in insertion order so deletions behave like
// hard deletes.
type stubLancamentoRepo struct {
	lancamentos map[uuid.UUID]*model.Lancamento
}

func newStubLancamentoRepo() *stubLancamentoRepo {
	return &stubLancamentoRepo{lancamentos: make(map[uuid.UUID]*model.Lancamento)}
}

func (r *stubLancamentoRepo) CreateTx(_ *gorm.DB, l *model.Lancamento) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lancamentos[l.ID] = l
	return nil
}

func (r *stubLancamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Lancamento, error) {
	l, ok := r.lancamentos[id]
	if !ok {
		return nil, errNotFound
	}
	return l, nil
}

func (r *stubLancamentoRepo) ListByComanda(_ context.Context, comandaID uuid.UUID) ([]model.Lancamento, error) {
	var out []model.Lancamento
	for _, l := range r.lancamentos {
		if l.ComandaID == comandaID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLancamentoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.lancamentos, id)
	return nil
}

func (r *stubLancamentoRepo) DB() *gorm.DB { return nil }

var _ repository.LancamentoRepository = (*stubLancamentoRepo)(nil)

type stubPagamentoRepo struct {
	pagamentos map[uuid.UUID]*model.Pagamento
}

func newStubPagamentoRepo() *stubPagamentoRepo {
	return &stubPagamentoRepo{pagamentos: make(map[uuid.UUID]*model.Pagamento)}
}

func (r *stubPagamentoRepo) CreateTx(_ *gorm.DB, p *model.Pagamento) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagamentos[p.ID] = p
	return nil
}

func (r *stubPagamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pagamento, error) {
	p, ok := r.pagamentos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPagamentoRepo) ListByComanda(_ context.Context, comandaID uuid.UUID) ([]model.Pagamento, error) {
	var out []model.Pagamento
	for _, p := range r.pagamentos {
		if p.ComandaID == comandaID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPagamentoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.pagamentos, id)
	return nil
}

func (r *stubPagamentoRepo) DB() *gorm.DB { return nil }

var _ repository.PagamentoRepository = (*stubPagamentoRepo)(nil)

type stubPremioRepo struct {
	premios map[uuid.UUID]*model.Premio
}

func newStubPremioRepo() *stubPremioRepo {
	return &stubPremioRepo{premios: make(map[uuid.UUID]*model.Premio)}
}

func (r *stubPremioRepo) Create(_ context.Context, p *model.Premio) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.premios[p.ID] = p
	return nil
}

func (r *stubPremioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Premio, error) {
	p, ok := r.premios[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPremioRepo) List(_ context.Context, statusEntrega string) ([]model.Premio, error) {
	var out []model.Premio
	for _, p := range r.premios {
		if statusEntrega == "" || p.StatusEntrega == statusEntrega {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPremioRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	p, ok := r.premios[id]
	if !ok {
		return errNotFound
	}
	p.StatusEntrega = status
	return nil
}

func (r *stubPremioRepo) DB() *gorm.DB { return nil }

var _ repository.PremioRepository = (*stubPremioRepo)(nil)

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Ativo {
			return u, nil
		}
	}
	return nil, errNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

// fixture wires every service over the in-memory stubs, mirroring the
// production dependency graph from the router.
type fixture struct {
	produtoRepo    *stubProdutoRepo
	movRepo        *stubMovRepo
	clienteRepo    *stubClienteRepo
	comandaRepo    *stubComandaRepo
	lancamentoRepo *stubLancamentoRepo
	pagamentoRepo  *stubPagamentoRepo
	premioRepo     *stubPremioRepo

	estoque     service.EstoqueService
	produtos    service.ProdutoService
	comandas    service.ComandaService
	lancamentos service.LancamentoService
	pagamentos  service.PagamentoService
	premios     service.PremioService
}

func newFixture() *fixture {
	f := &fixture{
		produtoRepo:    newStubProdutoRepo(),
		movRepo:        &stubMovRepo{},
		clienteRepo:    newStubClienteRepo(),
		lancamentoRepo: newStubLancamentoRepo(),
		pagamentoRepo:  newStubPagamentoRepo(),
		premioRepo:     newStubPremioRepo(),
	}
	f.comandaRepo = newStubComandaRepo(f.lancamentoRepo, f.pagamentoRepo)

	f.estoque = service.NewEstoqueService(f.produtoRepo, f.movRepo, nil, nil)
	f.produtos = service.NewProdutoService(f.produtoRepo, f.estoque)
	f.comandas = service.NewComandaService(f.comandaRepo, f.clienteRepo)
	f.lancamentos = service.NewLancamentoService(f.lancamentoRepo, f.comandaRepo, f.produtoRepo, f.estoque, f.comandas)
	f.pagamentos = service.NewPagamentoService(f.pagamentoRepo, f.comandaRepo, f.comandas)
	f.premios = service.NewPremioService(f.premioRepo, f.produtoRepo, f.clienteRepo, f.estoque)
	return f
}

func (f *fixture) seedProduto(nome string, estoque, minimo int) *model.Produto {
	p := &model.Produto{
		ID:            uuid.New(),
		Nome:          nome,
		ValorPadrao:   decimal.NewFromFloat(10),
		EstoqueAtual:  estoque,
		EstoqueMinimo: minimo,
	}
	f.produtoRepo.produtos[p.ID] = p
	return p
}

func (f *fixture) seedCliente(nome string) *model.Cliente {
	c := &model.Cliente{ID: uuid.New(), Nome: nome}
	f.clienteRepo.clientes[c.ID] = c
	return c
}

func (f *fixture) seedComandaAberta(clienteID uuid.UUID) *model.Comanda {
	c := &model.Comanda{
		ID:            uuid.New(),
		ClienteID:     clienteID,
		Status:        model.ComandaAberta,
		ValorTotal:    decimal.Zero,
		ValorPago:     decimal.Zero,
		SaldoRestante: decimal.Zero,
	}
	f.comandaRepo.comandas[c.ID] = c
	return c
}
