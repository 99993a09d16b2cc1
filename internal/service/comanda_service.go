package service

import (
	"context"
	"time"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ComandaService manages tab lifecycle. Totals (valor_total, valor_pago,
// saldo_restante) are derived values: RecalcularTotaisTx recomputes them from
// the lançamentos and pagamentos tables and is the only writer of those columns.
type ComandaService interface {
	Abrir(ctx context.Context, req dto.AbrirComandaRequest) (*dto.ComandaResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ComandaResponse, error)
	Listar(ctx context.Context, filter dto.ComandaFilter) ([]dto.ComandaResponse, error)
	Fechar(ctx context.Context, id uuid.UUID) (*dto.ComandaResponse, error)
	Recalcular(ctx context.Context, id uuid.UUID) (*dto.TotaisComanda, error)

	RecalcularTotaisTx(tx *gorm.DB, comandaID uuid.UUID) (*dto.TotaisComanda, error)
}

type comandaService struct {
	comandaRepo repository.ComandaRepository
	clienteRepo repository.ClienteRepository
}

func NewComandaService(comandaRepo repository.ComandaRepository, clienteRepo repository.ClienteRepository) ComandaService {
	return &comandaService{comandaRepo: comandaRepo, clienteRepo: clienteRepo}
}

func (s *comandaService) Abrir(ctx context.Context, req dto.AbrirComandaRequest) (*dto.ComandaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}

	comanda := &model.Comanda{
		ClienteID:     clienteID,
		Status:        model.ComandaAberta,
		ValorTotal:    decimal.Zero,
		ValorPago:     decimal.Zero,
		SaldoRestante: decimal.Zero,
	}
	if err := s.comandaRepo.Create(ctx, comanda); err != nil {
		return nil, err
	}
	comanda.Cliente = cliente
	return comandaToResponse(comanda), nil
}

func (s *comandaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ComandaResponse, error) {
	comanda, err := s.comandaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrComandaNaoEncontrada
	}
	return comandaToResponse(comanda), nil
}

func (s *comandaService) Listar(ctx context.Context, filter dto.ComandaFilter) ([]dto.ComandaResponse, error) {
	comandas, err := s.comandaRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ComandaResponse, 0, len(comandas))
	for i := range comandas {
		resp = append(resp, *comandaToResponse(&comandas[i]))
	}
	return resp, nil
}

// RecalcularTotaisTx re-derives the comanda's totals from its rows. The
// balance never goes negative: overpayment clamps saldo_restante to zero.
func (s *comandaService) RecalcularTotaisTx(tx *gorm.DB, comandaID uuid.UUID) (*dto.TotaisComanda, error) {
	total, err := s.comandaRepo.SumLancamentosTx(tx, comandaID)
	if err != nil {
		return nil, err
	}
	pago, err := s.comandaRepo.SumPagamentosTx(tx, comandaID)
	if err != nil {
		return nil, err
	}
	saldo := total.Sub(pago)
	if saldo.IsNegative() {
		saldo = decimal.Zero
	}
	totais := dto.TotaisComanda{ValorTotal: total, ValorPago: pago, SaldoRestante: saldo}
	if err := s.comandaRepo.UpdateTotaisTx(tx, comandaID, totais); err != nil {
		return nil, err
	}
	return &totais, nil
}

// Recalcular is the maintenance entry point: re-derives totals for a single
// comanda outside any workflow, e.g. after a manual data fix.
func (s *comandaService) Recalcular(ctx context.Context, id uuid.UUID) (*dto.TotaisComanda, error) {
	if _, err := s.comandaRepo.FindByID(ctx, id); err != nil {
		return nil, ErrComandaNaoEncontrada
	}
	var totais *dto.TotaisComanda
	err := runTx(ctx, s.comandaRepo.DB(), func(tx *gorm.DB) error {
		var innerErr error
		totais, innerErr = s.RecalcularTotaisTx(tx, id)
		return innerErr
	})
	return totais, err
}

// Fechar closes a comanda. The balance is re-read under the row lock so a
// payment landing between the check and the update cannot be missed, and a
// comanda with an outstanding balance never closes.
func (s *comandaService) Fechar(ctx context.Context, id uuid.UUID) (*dto.ComandaResponse, error) {
	err := runTx(ctx, s.comandaRepo.DB(), func(tx *gorm.DB) error {
		comanda, err := s.findComandaTx(ctx, tx, id)
		if err != nil {
			return ErrComandaNaoEncontrada
		}
		if comanda.Status == model.ComandaFechada {
			return ErrComandaFechada
		}
		totais, err := s.RecalcularTotaisTx(tx, id)
		if err != nil {
			return err
		}
		if totais.SaldoRestante.IsPositive() {
			return ErrSaldoEmAberto
		}
		return s.comandaRepo.UpdateStatusTx(tx, id, model.ComandaFechada)
	})
	if err != nil {
		return nil, err
	}
	return s.ObterPorID(ctx, id)
}

func (s *comandaService) findComandaTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Comanda, error) {
	if tx == nil {
		return s.comandaRepo.FindByID(ctx, id)
	}
	return s.comandaRepo.FindByIDTx(tx, id)
}

func comandaToResponse(c *model.Comanda) *dto.ComandaResponse {
	resp := &dto.ComandaResponse{
		ID:            c.ID.String(),
		ClienteID:     c.ClienteID.String(),
		Status:        c.Status,
		ValorTotal:    c.ValorTotal,
		ValorPago:     c.ValorPago,
		SaldoRestante: c.SaldoRestante,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
	if c.Cliente != nil {
		resp.ClienteNome = c.Cliente.Nome
	}
	return resp
}
