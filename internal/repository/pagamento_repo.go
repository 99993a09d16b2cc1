package repository

import (
	"context"

	"github.com/rafaelmsj/commandSystem/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagamentoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pagamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pagamento, error)
	ListByComanda(ctx context.Context, comandaID uuid.UUID) ([]model.Pagamento, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type pagamentoRepo struct{ db *gorm.DB }

func NewPagamentoRepository(db *gorm.DB) PagamentoRepository { return &pagamentoRepo{db: db} }

func (r *pagamentoRepo) CreateTx(tx *gorm.DB, p *model.Pagamento) error {
	return tx.Create(p).Error
}

func (r *pagamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pagamento, error) {
	var p model.Pagamento
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *pagamentoRepo) ListByComanda(ctx context.Context, comandaID uuid.UUID) ([]model.Pagamento, error) {
	var pagamentos []model.Pagamento
	err := r.db.WithContext(ctx).
		Where("comanda_id = ?", comandaID).
		Order("created_at DESC").
		Find(&pagamentos).Error
	return pagamentos, err
}

func (r *pagamentoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Pagamento{}, id).Error
}

func (r *pagamentoRepo) DB() *gorm.DB { return r.db }
