package repository

import (
	"context"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProdutoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit testing via in-memory stubs.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindByNome(ctx context.Context, nome string) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	Update(ctx context.Context, p *model.Produto) error
	EstoqueBaixo(ctx context.Context) ([]model.Produto, error)

	// Used inside transactions; callers must pass the live tx instance.
	// FindByIDTx takes a row lock so the check-then-debit sequence cannot
	// interleave with a concurrent debit of the same product.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error)
	UpdateEstoqueTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) FindByNome(ctx context.Context, nome string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Where("LOWER(nome) = LOWER(?)", nome).First(&p).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{})
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) EstoqueBaixo(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).
		Where("estoque_atual <= estoque_minimo").
		Order("estoque_atual ASC").
		Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) UpdateEstoqueTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).
		Update("estoque_atual", gorm.Expr("estoque_atual + ?", delta)).Error
}

func (r *produtoRepo) DB() *gorm.DB { return r.db }
