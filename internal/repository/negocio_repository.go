package repository

import (
	"context"
	"errors"

	"guardia/internal/model"

	"gorm.io/gorm"
)

type NegocioRepository struct {
	db *gorm.DB
}

type NegocioRepositoryInterface interface {
	List(ctx context.Context) ([]model.Negocio, error)
	GetByID(ctx context.Context, id int64) (*model.Negocio, error)
	Create(ctx context.Context, n *model.Negocio) error
	Update(ctx context.Context, n *model.Negocio) error
}

var _ NegocioRepositoryInterface = (*NegocioRepository)(nil)

func NewNegocioRepository(db *gorm.DB) *NegocioRepository {
	return &NegocioRepository{db: db}
}

func (r *NegocioRepository) List(ctx context.Context) ([]model.Negocio, error) {
	var negocios []model.Negocio
	err := r.db.WithContext(ctx).Order("nombre").Find(&negocios).Error
	return negocios, err
}

func (r *NegocioRepository) GetByID(ctx context.Context, id int64) (*model.Negocio, error) {
	var n model.Negocio
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNegocioNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NegocioRepository) Create(ctx context.Context, n *model.Negocio) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NegocioRepository) Update(ctx context.Context, n *model.Negocio) error {
	result := r.db.WithContext(ctx).Model(&model.Negocio{}).
		Where("id = ?", n.ID).
		Updates(map[string]interface{}{"nombre": n.Nombre, "activo": n.Activo})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNegocioNotFound
	}
	return nil
}
