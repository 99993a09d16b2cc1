package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoService is the catalog. All stock quantity changes flow through the
// ledger: creating a product with an initial quantity records an
// estoque_inicial entrada, and updating estoque_atual is treated as a
// physical re-count whose difference becomes an ajuste_manual movement.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
}

type produtoService struct {
	produtoRepo repository.ProdutoRepository
	estoque     EstoqueService
}

func NewProdutoService(produtoRepo repository.ProdutoRepository, estoque EstoqueService) ProdutoService {
	return &produtoService{produtoRepo: produtoRepo, estoque: estoque}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	nome := strings.TrimSpace(req.Nome)
	if existing, err := s.produtoRepo.FindByNome(ctx, nome); err == nil && existing != nil {
		return nil, ErrProdutoJaExiste
	}

	// The product starts at zero and receives its opening quantity through
	// the accumulator, so the ledger accounts for every unit from day one.
	produto := &model.Produto{
		Nome:          nome,
		ValorPadrao:   req.ValorPadrao,
		EstoqueAtual:  0,
		EstoqueMinimo: req.EstoqueMinimo,
	}

	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		if err := s.createTx(ctx, tx, produto); err != nil {
			return err
		}
		if req.EstoqueAtual > 0 {
			descricao := fmt.Sprintf("Estoque inicial de %s", produto.Nome)
			if _, err := s.estoque.AumentarEstoqueTx(ctx, tx, produto.ID, req.EstoqueAtual,
				model.OrigemEstoqueInicial, nil, descricao); err != nil {
				return err
			}
			produto.EstoqueAtual = req.EstoqueAtual
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.estoque.PosMovimentacao(ctx, produto.ID)
	return produtoToResponse(produto), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	produto, err := s.produtoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	produtos, total, err := s.produtoRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		data = append(data, *produtoToResponse(&produtos[i]))
	}
	return &dto.ProdutoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Atualizar applies catalog edits directly; a new estoque_atual is a re-count
// and its difference from the current quantity is appended to the ledger as
// an ajuste_manual movement, never written over the running sum.
func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.produtoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if existing, findErr := s.produtoRepo.FindByNome(ctx, nome); findErr == nil &&
			existing != nil && existing.ID != produto.ID {
			return nil, ErrProdutoJaExiste
		}
		produto.Nome = nome
	}
	if req.ValorPadrao != nil {
		produto.ValorPadrao = *req.ValorPadrao
	}
	if req.EstoqueMinimo != nil {
		produto.EstoqueMinimo = *req.EstoqueMinimo
	}

	movimentou := false
	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		if err := s.updateTx(ctx, tx, produto); err != nil {
			return err
		}
		if req.EstoqueAtual == nil {
			return nil
		}

		delta := *req.EstoqueAtual - produto.EstoqueAtual
		if delta == 0 {
			return nil
		}
		movimentou = true
		descricao := fmt.Sprintf("Recontagem: %d -> %d", produto.EstoqueAtual, *req.EstoqueAtual)
		if delta > 0 {
			_, err = s.estoque.AumentarEstoqueTx(ctx, tx, id, delta, model.OrigemAjusteManual, nil, descricao)
		} else {
			_, err = s.estoque.DiminuirEstoqueTx(ctx, tx, id, -delta, model.OrigemAjusteManual, nil, descricao)
		}
		if err != nil {
			return err
		}
		produto.EstoqueAtual = *req.EstoqueAtual
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if movimentou {
		s.estoque.PosMovimentacao(ctx, id)
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) createTx(ctx context.Context, tx *gorm.DB, p *model.Produto) error {
	if tx == nil {
		return s.produtoRepo.Create(ctx, p)
	}
	if err := tx.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProdutoJaExiste
		}
		return err
	}
	return nil
}

func (s *produtoService) updateTx(ctx context.Context, tx *gorm.DB, p *model.Produto) error {
	if tx == nil {
		return s.produtoRepo.Update(ctx, p)
	}
	return tx.Model(p).Updates(map[string]interface{}{
		"nome":           p.Nome,
		"valor_padrao":   p.ValorPadrao,
		"estoque_minimo": p.EstoqueMinimo,
	}).Error
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:            p.ID.String(),
		Nome:          p.Nome,
		ValorPadrao:   p.ValorPadrao,
		EstoqueAtual:  p.EstoqueAtual,
		EstoqueMinimo: p.EstoqueMinimo,
	}
}
