package repository

import (
	"context"

	"guardia/internal/model"

	"gorm.io/gorm"
)

// Catalog is one of the small lookup tables: tipos de turno, de ausencia and
// de novedad.
type Catalog interface {
	model.TipoTurno | model.TipoAusencia | model.TipoNovedad
}

type CatalogRepository[T Catalog] struct {
	db *gorm.DB
}

type CatalogRepositoryInterface[T Catalog] interface {
	List(ctx context.Context) ([]T, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, item *T) error
}

var (
	_ CatalogRepositoryInterface[model.TipoTurno]    = (*CatalogRepository[model.TipoTurno])(nil)
	_ CatalogRepositoryInterface[model.TipoAusencia] = (*CatalogRepository[model.TipoAusencia])(nil)
	_ CatalogRepositoryInterface[model.TipoNovedad]  = (*CatalogRepository[model.TipoNovedad])(nil)
)

func NewCatalogRepository[T Catalog](db *gorm.DB) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: db}
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, err
}

func (r *CatalogRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepository[T]) Create(ctx context.Context, item *T) error {
	return writeErr(r.db.WithContext(ctx).Create(item).Error)
}
