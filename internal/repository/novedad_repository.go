package repository

import (
	"context"

	"guardia/internal/model"

	"gorm.io/gorm"
)

type NovedadRepository struct {
	db *gorm.DB
}

type NovedadRepositoryInterface interface {
	Create(ctx context.Context, n *model.Novedad) error
	List(ctx context.Context, negocioID int64, estado string) ([]model.Novedad, error)
	UpdateEstado(ctx context.Context, id int64, estado string) error
}

var _ NovedadRepositoryInterface = (*NovedadRepository)(nil)

func NewNovedadRepository(db *gorm.DB) *NovedadRepository {
	return &NovedadRepository{db: db}
}

func (r *NovedadRepository) Create(ctx context.Context, n *model.Novedad) error {
	return writeErr(r.db.WithContext(ctx).Create(n).Error)
}

// List returns the negocio's novedades, newest first. An empty estado
// matches every estado.
func (r *NovedadRepository) List(ctx context.Context, negocioID int64, estado string) ([]model.Novedad, error) {
	q := r.db.WithContext(ctx).Where("negocio_id = ?", negocioID)
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}

	var novedades []model.Novedad
	err := q.Order("created_at DESC").Find(&novedades).Error
	return novedades, err
}

func (r *NovedadRepository) UpdateEstado(ctx context.Context, id int64, estado string) error {
	result := r.db.WithContext(ctx).Model(&model.Novedad{}).Where("id = ?", id).Update("estado", estado)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNovedadNotFound
	}
	return nil
}
