package service

import (
	"context"
	"time"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PagamentoService applies payments to open comandas. The outstanding
// balance is re-derived inside the transaction, under the comanda row lock,
// before the payment is accepted.
type PagamentoService interface {
	Criar(ctx context.Context, req dto.CriarPagamentoRequest) (*dto.PagamentoResponse, error)
	ListarPorComanda(ctx context.Context, comandaID uuid.UUID) ([]dto.PagamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type pagamentoService struct {
	pagamentoRepo repository.PagamentoRepository
	comandaRepo   repository.ComandaRepository
	comandas      ComandaService
}

func NewPagamentoService(
	pagamentoRepo repository.PagamentoRepository,
	comandaRepo repository.ComandaRepository,
	comandas ComandaService,
) PagamentoService {
	return &pagamentoService{
		pagamentoRepo: pagamentoRepo,
		comandaRepo:   comandaRepo,
		comandas:      comandas,
	}
}

func (s *pagamentoService) Criar(ctx context.Context, req dto.CriarPagamentoRequest) (*dto.PagamentoResponse, error) {
	comandaID, err := uuid.Parse(req.ComandaID)
	if err != nil {
		return nil, ErrComandaNaoEncontrada
	}
	if !req.Valor.IsPositive() {
		return nil, ErrValorInvalido
	}

	var pagamento *model.Pagamento
	txErr := runTx(ctx, s.pagamentoRepo.DB(), func(tx *gorm.DB) error {
		comanda, err := s.findComandaTx(ctx, tx, comandaID)
		if err != nil {
			return ErrComandaNaoEncontrada
		}
		if comanda.Status != model.ComandaAberta {
			return ErrComandaFechada
		}

		// Fresh balance under the lock, not the possibly stale column.
		totais, err := s.comandas.RecalcularTotaisTx(tx, comandaID)
		if err != nil {
			return err
		}
		if !totais.SaldoRestante.IsPositive() {
			return ErrComandaQuitada
		}
		if req.Valor.GreaterThan(totais.SaldoRestante) {
			return ErrValorExcedeSaldo
		}

		pagamento = &model.Pagamento{
			ComandaID:       comandaID,
			Valor:           req.Valor,
			MetodoPagamento: req.MetodoPagamento,
		}
		if err := s.pagamentoRepo.CreateTx(tx, pagamento); err != nil {
			return err
		}

		_, err = s.comandas.RecalcularTotaisTx(tx, comandaID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return pagamentoToResponse(pagamento), nil
}

func (s *pagamentoService) ListarPorComanda(ctx context.Context, comandaID uuid.UUID) ([]dto.PagamentoResponse, error) {
	pagamentos, err := s.pagamentoRepo.ListByComanda(ctx, comandaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PagamentoResponse, 0, len(pagamentos))
	for i := range pagamentos {
		resp = append(resp, *pagamentoToResponse(&pagamentos[i]))
	}
	return resp, nil
}

// Excluir removes a mistaken payment from an open comanda and re-derives
// the totals. No stock is involved.
func (s *pagamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	pagamento, err := s.pagamentoRepo.FindByID(ctx, id)
	if err != nil {
		return ErrPagamentoNaoEncontrado
	}

	return runTx(ctx, s.pagamentoRepo.DB(), func(tx *gorm.DB) error {
		comanda, err := s.findComandaTx(ctx, tx, pagamento.ComandaID)
		if err != nil {
			return ErrComandaNaoEncontrada
		}
		if comanda.Status != model.ComandaAberta {
			return ErrComandaFechada
		}
		if err := s.pagamentoRepo.DeleteTx(tx, id); err != nil {
			return err
		}
		_, err = s.comandas.RecalcularTotaisTx(tx, pagamento.ComandaID)
		return err
	})
}

func (s *pagamentoService) findComandaTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Comanda, error) {
	if tx == nil {
		return s.comandaRepo.FindByID(ctx, id)
	}
	return s.comandaRepo.FindByIDTx(tx, id)
}

func pagamentoToResponse(p *model.Pagamento) *dto.PagamentoResponse {
	return &dto.PagamentoResponse{
		ID:              p.ID.String(),
		ComandaID:       p.ComandaID.String(),
		Valor:           p.Valor,
		MetodoPagamento: p.MetodoPagamento,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}
