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

// PremioService tracks raffle prizes. Delivery debits the product's stock in
// the same transaction that flips the status, so a prize is never marked
// entregue when the stock debit fails.
type PremioService interface {
	Criar(ctx context.Context, req dto.CriarPremioRequest) (*dto.PremioResponse, error)
	Listar(ctx context.Context, statusEntrega string) ([]dto.PremioResponse, error)
	AtualizarEntrega(ctx context.Context, id uuid.UUID, req dto.EntregarPremioRequest) (*dto.PremioResponse, error)
}

type premioService struct {
	premioRepo  repository.PremioRepository
	produtoRepo repository.ProdutoRepository
	clienteRepo repository.ClienteRepository
	estoque     EstoqueService
}

func NewPremioService(
	premioRepo repository.PremioRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	estoque EstoqueService,
) PremioService {
	return &premioService{
		premioRepo:  premioRepo,
		produtoRepo: produtoRepo,
		clienteRepo: clienteRepo,
		estoque:     estoque,
	}
}

func (s *premioService) Criar(ctx context.Context, req dto.CriarPremioRequest) (*dto.PremioResponse, error) {
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	produto, err := s.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, ErrClienteNaoEncontrado
		}
		if _, err := s.clienteRepo.FindByID(ctx, cid); err != nil {
			return nil, ErrClienteNaoEncontrado
		}
		clienteID = &cid
	}

	premio := &model.Premio{
		ProdutoID:     produtoID,
		ClienteID:     clienteID,
		Quantidade:    req.Quantidade,
		StatusEntrega: model.EntregaPendente,
	}
	if err := s.premioRepo.Create(ctx, premio); err != nil {
		return nil, err
	}
	premio.Produto = produto
	return premioToResponse(premio), nil
}

func (s *premioService) Listar(ctx context.Context, statusEntrega string) ([]dto.PremioResponse, error) {
	premios, err := s.premioRepo.List(ctx, statusEntrega)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PremioResponse, 0, len(premios))
	for i := range premios {
		resp = append(resp, *premioToResponse(&premios[i]))
	}
	return resp, nil
}

// AtualizarEntrega transitions the delivery status. Moving to entregue
// debits stock; moving back to pendente only resets the flag and leaves the
// ledger untouched, since the physical item may or may not have returned.
func (s *premioService) AtualizarEntrega(ctx context.Context, id uuid.UUID, req dto.EntregarPremioRequest) (*dto.PremioResponse, error) {
	premio, err := s.premioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPremioNaoEncontrado
	}
	if premio.StatusEntrega == req.StatusEntrega {
		return premioToResponse(premio), nil
	}

	if req.StatusEntrega == model.EntregaEntregue {
		txErr := runTx(ctx, s.premioRepo.DB(), func(tx *gorm.DB) error {
			descricao := fmt.Sprintf("Entrega de prêmio (%d unidade(s))", premio.Quantidade)
			if _, err := s.estoque.DiminuirEstoqueTx(ctx, tx, premio.ProdutoID, premio.Quantidade,
				model.OrigemEntregaPremio, premio.ClienteID, descricao); err != nil {
				return err
			}
			return s.premioRepo.UpdateStatusTx(tx, id, model.EntregaEntregue)
		})
		if txErr != nil {
			return nil, txErr
		}
		s.estoque.PosMovimentacao(ctx, premio.ProdutoID)
	} else {
		err := runTx(ctx, s.premioRepo.DB(), func(tx *gorm.DB) error {
			return s.premioRepo.UpdateStatusTx(tx, id, model.EntregaPendente)
		})
		if err != nil {
			return nil, err
		}
	}

	premio.StatusEntrega = req.StatusEntrega
	return premioToResponse(premio), nil
}

func premioToResponse(p *model.Premio) *dto.PremioResponse {
	resp := &dto.PremioResponse{
		ID:            p.ID.String(),
		ProdutoID:     p.ProdutoID.String(),
		Quantidade:    p.Quantidade,
		StatusEntrega: p.StatusEntrega,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.ClienteID != nil {
		cid := p.ClienteID.String()
		resp.ClienteID = &cid
	}
	if p.Produto != nil {
		resp.ProdutoNome = p.Produto.Nome
	}
	return resp
}
