package repository

import (
	"context"

	"github.com/rafaelmsj/commandSystem/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PremioRepository interface {
	Create(ctx context.Context, p *model.Premio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Premio, error)
	List(ctx context.Context, statusEntrega string) ([]model.Premio, error)
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	DB() *gorm.DB
}

type premioRepo struct{ db *gorm.DB }

func NewPremioRepository(db *gorm.DB) PremioRepository { return &premioRepo{db: db} }

func (r *premioRepo) Create(ctx context.Context, p *model.Premio) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *premioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Premio, error) {
	var p model.Premio
	err := r.db.WithContext(ctx).Preload("Produto").First(&p, id).Error
	return &p, err
}

func (r *premioRepo) List(ctx context.Context, statusEntrega string) ([]model.Premio, error) {
	q := r.db.WithContext(ctx).Model(&model.Premio{}).Preload("Produto")
	if statusEntrega != "" {
		q = q.Where("status_entrega = ?", statusEntrega)
	}
	var premios []model.Premio
	err := q.Order("created_at DESC").Find(&premios).Error
	return premios, err
}

func (r *premioRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Premio{}).Where("id = ?", id).
		Update("status_entrega", status).Error
}

func (r *premioRepo) DB() *gorm.DB { return r.db }
