package repository

import (
	"context"
	"time"

	"guardia/internal/model"

	"gorm.io/gorm"
)

type AusenciaRepository struct {
	db *gorm.DB
}

type AusenciaFilter struct {
	ColaboradorID *int64
	Desde         *time.Time
	Hasta         *time.Time
}

type AusenciaRepositoryInterface interface {
	List(ctx context.Context, f AusenciaFilter) ([]model.Ausencia, error)
	Create(ctx context.Context, a *model.Ausencia) error
	Delete(ctx context.Context, id int64) error
	Covering(ctx context.Context, colaboradorID int64, fecha time.Time) (*model.Ausencia, error)
}

var _ AusenciaRepositoryInterface = (*AusenciaRepository)(nil)

func NewAusenciaRepository(db *gorm.DB) *AusenciaRepository {
	return &AusenciaRepository{db: db}
}

func (r *AusenciaRepository) List(ctx context.Context, f AusenciaFilter) ([]model.Ausencia, error) {
	q := r.db.WithContext(ctx)
	if f.ColaboradorID != nil {
		q = q.Where("colaborador_id = ?", *f.ColaboradorID)
	}
	if f.Desde != nil {
		q = q.Where("fecha_fin >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		q = q.Where("fecha_inicio <= ?", *f.Hasta)
	}

	var ausencias []model.Ausencia
	err := q.Order("fecha_inicio DESC").Find(&ausencias).Error
	return ausencias, err
}

// Create inserts the absence unless it overlaps another one of the same
// colaborador.
func (r *AusenciaRepository) Create(ctx context.Context, a *model.Ausencia) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", a.ColaboradorID).Error; err != nil {
			return err
		}

		var overlapping int64
		err := tx.Model(&model.Ausencia{}).
			Where("colaborador_id = ? AND fecha_inicio <= ? AND fecha_fin >= ?", a.ColaboradorID, a.FechaFin, a.FechaInicio).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrAusenciaSolapada
		}
		return writeErr(tx.Create(a).Error)
	})
}

func (r *AusenciaRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Ausencia{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAusenciaNotFound
	}
	return nil
}

// Covering returns the absence spanning fecha, or nil.
func (r *AusenciaRepository) Covering(ctx context.Context, colaboradorID int64, fecha time.Time) (*model.Ausencia, error) {
	var ausencias []model.Ausencia
	err := r.db.WithContext(ctx).
		Where("colaborador_id = ? AND fecha_inicio <= ? AND fecha_fin >= ?", colaboradorID, fecha, fecha).
		Limit(1).
		Find(&ausencias).Error
	if err != nil || len(ausencias) == 0 {
		return nil, err
	}
	return &ausencias[0], nil
}
