package service

import (
	"context"
	"strings"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, search string) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
}

type clienteService struct {
	clienteRepo repository.ClienteRepository
}

func NewClienteService(clienteRepo repository.ClienteRepository) ClienteService {
	return &clienteService{clienteRepo: clienteRepo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &model.Cliente{
		Nome:     strings.TrimSpace(req.Nome),
		Telefone: req.Telefone,
	}
	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, search string) ([]dto.ClienteResponse, error) {
	clientes, err := s.clienteRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	cliente.Nome = strings.TrimSpace(req.Nome)
	if req.Telefone != nil {
		cliente.Telefone = req.Telefone
	}
	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID.String(),
		Nome:     c.Nome,
		Telefone: c.Telefone,
	}
}
