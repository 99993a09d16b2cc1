package repository

import (
	"context"

	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ComandaRepository interface {
	Create(ctx context.Context, c *model.Comanda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comanda, error)
	List(ctx context.Context, filter dto.ComandaFilter) ([]model.Comanda, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// Transaction-scoped operations for the totals recomputation.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Comanda, error)
	SumLancamentosTx(tx *gorm.DB, comandaID uuid.UUID) (decimal.Decimal, error)
	SumPagamentosTx(tx *gorm.DB, comandaID uuid.UUID) (decimal.Decimal, error)
	UpdateTotaisTx(tx *gorm.DB, id uuid.UUID, totais dto.TotaisComanda) error
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error

	DB() *gorm.DB
}

type comandaRepo struct{ db *gorm.DB }

func NewComandaRepository(db *gorm.DB) ComandaRepository { return &comandaRepo{db: db} }

func (r *comandaRepo) Create(ctx context.Context, c *model.Comanda) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comandaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comanda, error) {
	var c model.Comanda
	err := r.db.WithContext(ctx).Preload("Cliente").First(&c, id).Error
	return &c, err
}

func (r *comandaRepo) List(ctx context.Context, filter dto.ComandaFilter) ([]model.Comanda, error) {
	q := r.db.WithContext(ctx).Model(&model.Comanda{}).Preload("Cliente")

	// Default: only open comandas; "todos" lists everything.
	status := filter.Status
	if status == "" {
		status = model.ComandaAberta
	}
	if status != "todos" {
		q = q.Where("status = ?", status)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.DataInicio != "" {
		q = q.Where("created_at >= ?", filter.DataInicio+" 00:00:00")
	}
	if filter.DataFim != "" {
		q = q.Where("created_at <= ?", filter.DataFim+" 23:59:59")
	}

	var comandas []model.Comanda
	err := q.Order("created_at DESC").Find(&comandas).Error
	return comandas, err
}

func (r *comandaRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Comanda{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *comandaRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Comanda, error) {
	var c model.Comanda
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, id).Error
	return &c, err
}

func (r *comandaRepo) SumLancamentosTx(tx *gorm.DB, comandaID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.Raw(`SELECT COALESCE(SUM(valor_lancado * quantidade), 0)
		FROM lancamentos_produtos WHERE comanda_id = ?`, comandaID).Scan(&total).Error
	return total, err
}

func (r *comandaRepo) SumPagamentosTx(tx *gorm.DB, comandaID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.Raw(`SELECT COALESCE(SUM(valor), 0)
		FROM pagamentos WHERE comanda_id = ?`, comandaID).Scan(&total).Error
	return total, err
}

func (r *comandaRepo) UpdateTotaisTx(tx *gorm.DB, id uuid.UUID, totais dto.TotaisComanda) error {
	return tx.Model(&model.Comanda{}).Where("id = ?", id).Updates(map[string]interface{}{
		"valor_total":    totais.ValorTotal,
		"valor_pago":     totais.ValorPago,
		"saldo_restante": totais.SaldoRestante,
	}).Error
}

func (r *comandaRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Comanda{}).Where("id = ?", id).Update("status", status).Error
}

func (r *comandaRepo) DB() *gorm.DB { return r.db }
