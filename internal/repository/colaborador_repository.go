package repository

import (
	"context"
	"errors"

	"guardia/internal/model"

	"gorm.io/gorm"
)

type ColaboradorRepository struct {
	db *gorm.DB
}

type ColaboradorRepositoryInterface interface {
	ListByNegocio(ctx context.Context, negocioID int64, activo *bool) ([]model.Colaborador, error)
	GetByID(ctx context.Context, id int64) (*model.Colaborador, error)
	FindByCedula(ctx context.Context, negocioID int64, cedula string) (*model.Colaborador, error)
	Create(ctx context.Context, c *model.Colaborador) error
	Update(ctx context.Context, c *model.Colaborador) error
}

var _ ColaboradorRepositoryInterface = (*ColaboradorRepository)(nil)

func NewColaboradorRepository(db *gorm.DB) *ColaboradorRepository {
	return &ColaboradorRepository{db: db}
}

func (r *ColaboradorRepository) ListByNegocio(ctx context.Context, negocioID int64, activo *bool) ([]model.Colaborador, error) {
	var colaboradores []model.Colaborador
	q := r.db.WithContext(ctx).Where("negocio_id = ?", negocioID)
	if activo != nil {
		q = q.Where("activo = ?", *activo)
	}
	err := q.Order("apellidos, nombres").Find(&colaboradores).Error
	return colaboradores, err
}

func (r *ColaboradorRepository) GetByID(ctx context.Context, id int64) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrColaboradorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByCedula returns nil, nil when no colaborador of the negocio has that cedula.
func (r *ColaboradorRepository) FindByCedula(ctx context.Context, negocioID int64, cedula string) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).Where("negocio_id = ? AND cedula = ?", negocioID, cedula).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ColaboradorRepository) Create(ctx context.Context, c *model.Colaborador) error {
	return writeErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *ColaboradorRepository) Update(ctx context.Context, c *model.Colaborador) error {
	result := r.db.WithContext(ctx).Model(&model.Colaborador{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"nombres":   c.Nombres,
			"apellidos": c.Apellidos,
			"cedula":    c.Cedula,
			"telefono":  c.Telefono,
			"activo":    c.Activo,
		})
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrColaboradorNotFound
	}
	return nil
}
