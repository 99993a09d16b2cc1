package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LancamentoService posts and reverses line items on open comandas. Both
// workflows run in a single transaction: the stock movement, the lançamento
// row and the totals recomputation commit or roll back together.
type LancamentoService interface {
	Criar(ctx context.Context, req dto.CriarLancamentoRequest) (*dto.LancamentoResponse, error)
	ListarPorComanda(ctx context.Context, comandaID uuid.UUID) ([]dto.LancamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type lancamentoService struct {
	lancamentoRepo repository.LancamentoRepository
	comandaRepo    repository.ComandaRepository
	produtoRepo    repository.ProdutoRepository
	estoque        EstoqueService
	comandas       ComandaService
}

func NewLancamentoService(
	lancamentoRepo repository.LancamentoRepository,
	comandaRepo repository.ComandaRepository,
	produtoRepo repository.ProdutoRepository,
	estoque EstoqueService,
	comandas ComandaService,
) LancamentoService {
	return &lancamentoService{
		lancamentoRepo: lancamentoRepo,
		comandaRepo:    comandaRepo,
		produtoRepo:    produtoRepo,
		estoque:        estoque,
		comandas:       comandas,
	}
}

// Criar debits stock before inserting the lançamento, so a product without
// enough on-hand quantity never reaches the comanda.
func (s *lancamentoService) Criar(ctx context.Context, req dto.CriarLancamentoRequest) (*dto.LancamentoResponse, error) {
	comandaID, err := uuid.Parse(req.ComandaID)
	if err != nil {
		return nil, ErrComandaNaoEncontrada
	}
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	var lancamento *model.Lancamento
	txErr := runTx(ctx, s.lancamentoRepo.DB(), func(tx *gorm.DB) error {
		comanda, err := s.findComandaTx(ctx, tx, comandaID)
		if err != nil {
			return ErrComandaNaoEncontrada
		}
		if comanda.Status != model.ComandaAberta {
			return ErrComandaFechada
		}

		produto, err := s.findProdutoTx(ctx, tx, produtoID)
		if err != nil {
			return ErrProdutoNaoEncontrado
		}

		descricao := fmt.Sprintf("Venda de %d x %s", req.Quantidade, produto.Nome)
		if _, err := s.estoque.DiminuirEstoqueTx(ctx, tx, produtoID, req.Quantidade,
			model.OrigemVendaComanda, &comanda.ClienteID, descricao); err != nil {
			return err
		}

		lancamento = &model.Lancamento{
			ComandaID:    comandaID,
			ProdutoID:    produtoID,
			ValorLancado: req.ValorLancado,
			Quantidade:   req.Quantidade,
		}
		if err := s.lancamentoRepo.CreateTx(tx, lancamento); err != nil {
			return err
		}

		_, err = s.comandas.RecalcularTotaisTx(tx, comandaID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.estoque.PosMovimentacao(ctx, produtoID)
	return lancamentoToResponse(lancamento), nil
}

func (s *lancamentoService) ListarPorComanda(ctx context.Context, comandaID uuid.UUID) ([]dto.LancamentoResponse, error) {
	lancamentos, err := s.lancamentoRepo.ListByComanda(ctx, comandaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LancamentoResponse, 0, len(lancamentos))
	for i := range lancamentos {
		resp = append(resp, *lancamentoToResponse(&lancamentos[i]))
	}
	return resp, nil
}

// Excluir reverses a posted item: stock is credited back with a compensating
// estorno movement, then the row is hard-deleted and totals re-derived. Only
// items on open comandas can be reversed.
func (s *lancamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	lancamento, err := s.lancamentoRepo.FindByID(ctx, id)
	if err != nil {
		return ErrLancamentoNaoEncontrado
	}

	txErr := runTx(ctx, s.lancamentoRepo.DB(), func(tx *gorm.DB) error {
		comanda, err := s.findComandaTx(ctx, tx, lancamento.ComandaID)
		if err != nil {
			return ErrComandaNaoEncontrada
		}
		if comanda.Status != model.ComandaAberta {
			return ErrComandaFechada
		}

		descricao := fmt.Sprintf("Estorno de lançamento (%d unidade(s))", lancamento.Quantidade)
		if _, err := s.estoque.AumentarEstoqueTx(ctx, tx, lancamento.ProdutoID, lancamento.Quantidade,
			model.OrigemEstornoComanda, &comanda.ClienteID, descricao); err != nil {
			return err
		}
		if err := s.lancamentoRepo.DeleteTx(tx, id); err != nil {
			return err
		}

		_, err = s.comandas.RecalcularTotaisTx(tx, lancamento.ComandaID)
		return err
	})
	if txErr != nil {
		return txErr
	}

	s.estoque.PosMovimentacao(ctx, lancamento.ProdutoID)
	return nil
}

func (s *lancamentoService) findComandaTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Comanda, error) {
	if tx == nil {
		return s.comandaRepo.FindByID(ctx, id)
	}
	return s.comandaRepo.FindByIDTx(tx, id)
}

func (s *lancamentoService) findProdutoTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	if tx == nil {
		return s.produtoRepo.FindByID(ctx, id)
	}
	return s.produtoRepo.FindByIDTx(tx, id)
}

func lancamentoToResponse(l *model.Lancamento) *dto.LancamentoResponse {
	resp := &dto.LancamentoResponse{
		ID:           l.ID.String(),
		ComandaID:    l.ComandaID.String(),
		ProdutoID:    l.ProdutoID.String(),
		ValorLancado: l.ValorLancado,
		Quantidade:   l.Quantidade,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
	if l.Produto != nil {
		resp.ProdutoNome = l.Produto.Nome
	}
	return resp
}
