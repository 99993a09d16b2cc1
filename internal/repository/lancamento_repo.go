package repository

import (
	"context"

	"github.com/rafaelmsj/commandSystem/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LancamentoRepository interface {
	CreateTx(tx *gorm.DB, l *model.Lancamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lancamento, error)
	ListByComanda(ctx context.Context, comandaID uuid.UUID) ([]model.Lancamento, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type lancamentoRepo struct{ db *gorm.DB }

func NewLancamentoRepository(db *gorm.DB) LancamentoRepository { return &lancamentoRepo{db: db} }

func (r *lancamentoRepo) CreateTx(tx *gorm.DB, l *model.Lancamento) error {
	return tx.Create(l).Error
}

func (r *lancamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Lancamento, error) {
	var l model.Lancamento
	err := r.db.WithContext(ctx).Preload("Produto").First(&l, id).Error
	return &l, err
}

func (r *lancamentoRepo) ListByComanda(ctx context.Context, comandaID uuid.UUID) ([]model.Lancamento, error) {
	var lancamentos []model.Lancamento
	err := r.db.WithContext(ctx).Preload("Produto").
		Where("comanda_id = ?", comandaID).
		Order("created_at DESC").
		Find(&lancamentos).Error
	return lancamentos, err
}

func (r *lancamentoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Lancamento{}, id).Error
}

func (r *lancamentoRepo) DB() *gorm.DB { return r.db }
