package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"
	"github.com/rafaelmsj/commandSystem/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	estoqueBaixoCacheKey = "estoque:baixo"
	estoqueBaixoCacheTTL = 60 * time.Second
)

// EstoqueService is the stock ledger: every change to a product's on-hand
// quantity goes through a movement append. The ledger is the source of
// truth; produtos.estoque_atual is the maintained running sum.
type EstoqueService interface {
	RegistrarMovimentacao(ctx context.Context, req dto.RegistrarMovimentacaoRequest) (*dto.MovimentacaoResponse, error)
	ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) (*dto.MovimentacaoListResponse, error)
	EstoqueBaixo(ctx context.Context) ([]dto.EstoqueBaixoResponse, error)
	Reconciliar(ctx context.Context, produtoID uuid.UUID) (*dto.ReconciliacaoResponse, error)

	// Transaction-scoped primitives used by the comanda and prêmio
	// workflows; callers must pass the live tx instance.
	DiminuirEstoqueTx(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, quantidade int, origem string, clienteID *uuid.UUID, descricao string) (*model.MovimentacaoEstoque, error)
	AumentarEstoqueTx(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, quantidade int, origem string, clienteID *uuid.UUID, descricao string) (*model.MovimentacaoEstoque, error)

	// PosMovimentacao runs after a stock-touching workflow commits:
	// invalidates the low-stock cache and enqueues an alert job when the
	// product sits at or below its reorder threshold. Best effort.
	PosMovimentacao(ctx context.Context, produtoID uuid.UUID)
}

type estoqueService struct {
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoEstoqueRepository
	rdb         *redis.Client
	dispatcher  *worker.Dispatcher
	locks       *produtoLocks
}

func NewEstoqueService(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoEstoqueRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
) EstoqueService {
	return &estoqueService{
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
		rdb:         rdb,
		dispatcher:  dispatcher,
		locks:       newProdutoLocks(),
	}
}

// ── Movement append ──────────────────────────────────────────────────────────

func (s *estoqueService) RegistrarMovimentacao(ctx context.Context, req dto.RegistrarMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, ErrClienteNaoEncontrado
		}
		clienteID = &cid
	}

	var mov *model.MovimentacaoEstoque
	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		var innerErr error
		if req.Tipo == model.TipoSaida {
			mov, innerErr = s.DiminuirEstoqueTx(ctx, tx, produtoID, req.Quantidade, req.Origem, clienteID, req.Descricao)
		} else {
			mov, innerErr = s.AumentarEstoqueTx(ctx, tx, produtoID, req.Quantidade, req.Origem, clienteID, req.Descricao)
		}
		return innerErr
	})
	if txErr != nil {
		return nil, txErr
	}

	s.PosMovimentacao(ctx, produtoID)
	return movimentacaoToResponse(mov), nil
}

// DiminuirEstoqueTx debits stock. The per-product mutex plus the row lock in
// FindByIDTx serialize the check-then-debit sequence: the movement is only
// recorded when the resulting quantity stays non-negative.
func (s *estoqueService) DiminuirEstoqueTx(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, quantidade int, origem string, clienteID *uuid.UUID, descricao string) (*model.MovimentacaoEstoque, error) {
	lock := s.locks.porProduto(produtoID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.findProdutoTx(ctx, tx, produtoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	if p.EstoqueAtual-quantidade < 0 {
		return nil, ErrEstoqueInsuficiente
	}

	if err := s.produtoRepo.UpdateEstoqueTx(tx, produtoID, -quantidade); err != nil {
		return nil, err
	}
	if descricao == "" {
		descricao = fmt.Sprintf("Saída de %d unidade(s)", quantidade)
	}
	mov := &model.MovimentacaoEstoque{
		ProdutoID:  produtoID,
		ClienteID:  clienteID,
		Origem:     origem,
		Tipo:       model.TipoSaida,
		Quantidade: quantidade,
		Descricao:  descricao,
	}
	if err := s.movRepo.CreateTx(tx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// AumentarEstoqueTx credits stock. Returning stock is never capacity-limited.
func (s *estoqueService) AumentarEstoqueTx(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, quantidade int, origem string, clienteID *uuid.UUID, descricao string) (*model.MovimentacaoEstoque, error) {
	if _, err := s.findProdutoTx(ctx, tx, produtoID); err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	if err := s.produtoRepo.UpdateEstoqueTx(tx, produtoID, quantidade); err != nil {
		return nil, err
	}
	if descricao == "" {
		descricao = fmt.Sprintf("Entrada de %d unidade(s)", quantidade)
	}
	mov := &model.MovimentacaoEstoque{
		ProdutoID:  produtoID,
		ClienteID:  clienteID,
		Origem:     origem,
		Tipo:       model.TipoEntrada,
		Quantidade: quantidade,
		Descricao:  descricao,
	}
	if err := s.movRepo.CreateTx(tx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

func (s *estoqueService) findProdutoTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	if tx == nil {
		return s.produtoRepo.FindByID(ctx, id)
	}
	return s.produtoRepo.FindByIDTx(tx, id)
}

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *estoqueService) ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) (*dto.MovimentacaoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	movimentacoes, total, err := s.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovimentacaoResponse, 0, len(movimentacoes))
	for i := range movimentacoes {
		data = append(data, *movimentacaoToResponse(&movimentacoes[i]))
	}
	return &dto.MovimentacaoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *estoqueService) EstoqueBaixo(ctx context.Context) ([]dto.EstoqueBaixoResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, estoqueBaixoCacheKey).Bytes(); err == nil {
			var resp []dto.EstoqueBaixoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return resp, nil
			}
		}
	}

	produtos, err := s.produtoRepo.EstoqueBaixo(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EstoqueBaixoResponse, 0, len(produtos))
	for _, p := range produtos {
		resp = append(resp, dto.EstoqueBaixoResponse{
			ID:            p.ID.String(),
			Nome:          p.Nome,
			EstoqueAtual:  p.EstoqueAtual,
			EstoqueMinimo: p.EstoqueMinimo,
		})
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, estoqueBaixoCacheKey, b, estoqueBaixoCacheTTL).Err()
		}
	}
	return resp, nil
}

// Reconciliar compares the cached running sum against the ledger itself.
// A divergence means some mutation path bypassed the accumulator.
func (s *estoqueService) Reconciliar(ctx context.Context, produtoID uuid.UUID) (*dto.ReconciliacaoResponse, error) {
	p, err := s.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	soma, err := s.movRepo.SumByProduto(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	return &dto.ReconciliacaoResponse{
		ProdutoID:    p.ID.String(),
		EstoqueAtual: p.EstoqueAtual,
		SomaLedger:   soma,
		Consistente:  p.EstoqueAtual == soma,
	}, nil
}

// ── Post-commit hook ─────────────────────────────────────────────────────────

func (s *estoqueService) PosMovimentacao(ctx context.Context, produtoID uuid.UUID) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, estoqueBaixoCacheKey).Err()
	}
	if s.dispatcher == nil {
		return
	}

	p, err := s.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return
	}
	if p.EstoqueAtual > p.EstoqueMinimo {
		return
	}
	payload := worker.AlertaEstoquePayload{
		ProdutoID:     p.ID.String(),
		Nome:          p.Nome,
		EstoqueAtual:  p.EstoqueAtual,
		EstoqueMinimo: p.EstoqueMinimo,
	}
	if err := s.dispatcher.EnqueueAlertaEstoque(ctx, payload); err != nil {
		log.Warn().Err(err).Str("produto", p.Nome).Msg("falha ao enfileirar alerta de estoque")
	}
}

func movimentacaoToResponse(m *model.MovimentacaoEstoque) *dto.MovimentacaoResponse {
	resp := &dto.MovimentacaoResponse{
		ID:         m.ID.String(),
		ProdutoID:  m.ProdutoID.String(),
		Origem:     m.Origem,
		Tipo:       m.Tipo,
		Quantidade: m.Quantidade,
		Descricao:  m.Descricao,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
	if m.ClienteID != nil {
		cid := m.ClienteID.String()
		resp.ClienteID = &cid
	}
	if m.Produto != nil {
		resp.ProdutoNome = m.Produto.Nome
	}
	if m.Cliente != nil {
		resp.ClienteNome = &m.Cliente.Nome
	}
	return resp
}
