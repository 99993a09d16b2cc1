package repository

import (
	"context"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimentacaoEstoqueRepository is the append-only ledger access contract.
// There is deliberately no Update or Delete: the ledger is the audit trail.
type MovimentacaoEstoqueRepository interface {
	Create(ctx context.Context, m *model.MovimentacaoEstoque) error
	CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error
	List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error)
	SumByProduto(ctx context.Context, produtoID uuid.UUID) (int, error)
}

type movimentacaoEstoqueRepo struct{ db *gorm.DB }

func NewMovimentacaoEstoqueRepository(db *gorm.DB) MovimentacaoEstoqueRepository {
	return &movimentacaoEstoqueRepo{db: db}
}

func (r *movimentacaoEstoqueRepo) Create(ctx context.Context, m *model.MovimentacaoEstoque) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimentacaoEstoqueRepo) CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentacaoEstoqueRepo) List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimentacaoEstoque{}).
		Preload("Produto").
		Preload("Cliente")

	if filter.ProdutoID != "" {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.Origem != "" {
		q = q.Where("origem = ?", filter.Origem)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.DataInicio != "" {
		q = q.Where("DATE(created_at) >= ?", filter.DataInicio)
	}
	if filter.DataFim != "" {
		q = q.Where("DATE(created_at) <= ?", filter.DataFim)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var movimentacoes []model.MovimentacaoEstoque
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&movimentacoes).Error
	return movimentacoes, total, err
}

// SumByProduto returns the signed running sum of the product's ledger,
// used by reconciliation checks against produtos.estoque_atual.
func (r *movimentacaoEstoqueRepo) SumByProduto(ctx context.Context, produtoID uuid.UUID) (int, error) {
	var sum int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN tipo = 'entrada' THEN quantidade ELSE -quantidade END), 0)
		FROM movimentacoes_estoque
		WHERE produto_id = ?`, produtoID).Scan(&sum).Error
	return sum, err
}
