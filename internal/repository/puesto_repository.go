package repository

import (
	"context"
	"errors"

	"guardia/internal/model"

	"gorm.io/gorm"
)

type UnidadRepository struct {
	db *gorm.DB
}

type UnidadRepositoryInterface interface {
	ListByNegocio(ctx context.Context, negocioID int64) ([]model.UnidadNegocio, error)
	GetByID(ctx context.Context, id int64) (*model.UnidadNegocio, error)
	Create(ctx context.Context, u *model.UnidadNegocio) error
	Update(ctx context.Context, u *model.UnidadNegocio) error
}

var _ UnidadRepositoryInterface = (*UnidadRepository)(nil)

func NewUnidadRepository(db *gorm.DB) *UnidadRepository {
	return &UnidadRepository{db: db}
}

func (r *UnidadRepository) ListByNegocio(ctx context.Context, negocioID int64) ([]model.UnidadNegocio, error) {
	var unidades []model.UnidadNegocio
	err := r.db.WithContext(ctx).Where("negocio_id = ?", negocioID).Order("nombre").Find(&unidades).Error
	return unidades, err
}

func (r *UnidadRepository) GetByID(ctx context.Context, id int64) (*model.UnidadNegocio, error) {
	var u model.UnidadNegocio
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnidadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnidadRepository) Create(ctx context.Context, u *model.UnidadNegocio) error {
	return writeErr(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UnidadRepository) Update(ctx context.Context, u *model.UnidadNegocio) error {
	result := r.db.WithContext(ctx).Model(&model.UnidadNegocio{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{"nombre": u.Nombre, "activo": u.Activo})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUnidadNotFound
	}
	return nil
}

type PuestoRepository struct {
	db *gorm.DB
}

type PuestoRepositoryInterface interface {
	ListByUnidad(ctx context.Context, unidadID int64) ([]model.Puesto, error)
	ListByNegocio(ctx context.Context, negocioID int64) ([]model.Puesto, error)
	GetByID(ctx context.Context, id int64) (*model.Puesto, error)
	NegocioID(ctx context.Context, puestoID int64) (int64, error)
	Create(ctx context.Context, p *model.Puesto) error
	Update(ctx context.Context, p *model.Puesto) error
}

var _ PuestoRepositoryInterface = (*PuestoRepository)(nil)

func NewPuestoRepository(db *gorm.DB) *PuestoRepository {
	return &PuestoRepository{db: db}
}

func (r *PuestoRepository) ListByUnidad(ctx context.Context, unidadID int64) ([]model.Puesto, error) {
	var puestos []model.Puesto
	err := r.db.WithContext(ctx).Where("unidad_negocio_id = ?", unidadID).Order("nombre").Find(&puestos).Error
	return puestos, err
}

func (r *PuestoRepository) ListByNegocio(ctx context.Context, negocioID int64) ([]model.Puesto, error) {
	var puestos []model.Puesto
	err := r.db.WithContext(ctx).
		Joins("JOIN unidades_negocio ON unidades_negocio.id = puestos.unidad_negocio_id").
		Where("unidades_negocio.negocio_id = ?", negocioID).
		Order("puestos.nombre").
		Find(&puestos).Error
	return puestos, err
}

func (r *PuestoRepository) GetByID(ctx context.Context, id int64) (*model.Puesto, error) {
	var p model.Puesto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPuestoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// NegocioID resolves the negocio owning a puesto through its unidad.
func (r *PuestoRepository) NegocioID(ctx context.Context, puestoID int64) (int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Table("puestos").
		Joins("JOIN unidades_negocio ON unidades_negocio.id = puestos.unidad_negocio_id").
		Where("puestos.id = ?", puestoID).
		Pluck("unidades_negocio.negocio_id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, ErrPuestoNotFound
	}
	return ids[0], nil
}

func (r *PuestoRepository) Create(ctx context.Context, p *model.Puesto) error {
	return writeErr(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PuestoRepository) Update(ctx context.Context, p *model.Puesto) error {
	result := r.db.WithContext(ctx).Model(&model.Puesto{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{"nombre": p.Nombre, "direccion": p.Direccion, "activo": p.Activo})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPuestoNotFound
	}
	return nil
}
