// Package mocks holds testify doubles of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/stretchr/testify/mock"
)

type NegocioRepository struct{ mock.Mock }

var _ repository.NegocioRepositoryInterface = (*NegocioRepository)(nil)

func (m *NegocioRepository) List(ctx context.Context) ([]model.Negocio, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.Negocio)
	return v, args.Error(1)
}

func (m *NegocioRepository) GetByID(ctx context.Context, id int64) (*model.Negocio, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Negocio)
	return v, args.Error(1)
}

func (m *NegocioRepository) Create(ctx context.Context, n *model.Negocio) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NegocioRepository) Update(ctx context.Context, n *model.Negocio) error {
	return m.Called(ctx, n).Error(0)
}

type UnidadRepository struct{ mock.Mock }

var _ repository.UnidadRepositoryInterface = (*UnidadRepository)(nil)

func (m *UnidadRepository) ListByNegocio(ctx context.Context, negocioID int64) ([]model.UnidadNegocio, error) {
	args := m.Called(ctx, negocioID)
	v, _ := args.Get(0).([]model.UnidadNegocio)
	return v, args.Error(1)
}

func (m *UnidadRepository) GetByID(ctx context.Context, id int64) (*model.UnidadNegocio, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.UnidadNegocio)
	return v, args.Error(1)
}

func (m *UnidadRepository) Create(ctx context.Context, u *model.UnidadNegocio) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UnidadRepository) Update(ctx context.Context, u *model.UnidadNegocio) error {
	return m.Called(ctx, u).Error(0)
}

type PuestoRepository struct{ mock.Mock }

var _ repository.PuestoRepositoryInterface = (*PuestoRepository)(nil)

func (m *PuestoRepository) ListByUnidad(ctx context.Context, unidadID int64) ([]model.Puesto, error) {
	args := m.Called(ctx, unidadID)
	v, _ := args.Get(0).([]model.Puesto)
	return v, args.Error(1)
}

func (m *PuestoRepository) ListByNegocio(ctx context.Context, negocioID int64) ([]model.Puesto, error) {
	args := m.Called(ctx, negocioID)
	v, _ := args.Get(0).([]model.Puesto)
	return v, args.Error(1)
}

func (m *PuestoRepository) GetByID(ctx context.Context, id int64) (*model.Puesto, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Puesto)
	return v, args.Error(1)
}

func (m *PuestoRepository) NegocioID(ctx context.Context, puestoID int64) (int64, error) {
	args := m.Called(ctx, puestoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PuestoRepository) Create(ctx context.Context, p *model.Puesto) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PuestoRepository) Update(ctx context.Context, p *model.Puesto) error {
	return m.Called(ctx, p).Error(0)
}

type CatalogRepository[T repository.Catalog] struct{ mock.Mock }

func (m *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]T)
	return v, args.Error(1)
}

func (m *CatalogRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogRepository[T]) Create(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

type ColaboradorRepository struct{ mock.Mock }

var _ repository.ColaboradorRepositoryInterface = (*ColaboradorRepository)(nil)

func (m *ColaboradorRepository) ListByNegocio(ctx context.Context, negocioID int64, activo *bool) ([]model.Colaborador, error) {
	args := m.Called(ctx, negocioID, activo)
	v, _ := args.Get(0).([]model.Colaborador)
	return v, args.Error(1)
}

func (m *ColaboradorRepository) GetByID(ctx context.Context, id int64) (*model.Colaborador, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Colaborador)
	return v, args.Error(1)
}

func (m *ColaboradorRepository) FindByCedula(ctx context.Context, negocioID int64, cedula string) (*model.Colaborador, error) {
	args := m.Called(ctx, negocioID, cedula)
	v, _ := args.Get(0).(*model.Colaborador)
	return v, args.Error(1)
}

func (m *ColaboradorRepository) Create(ctx context.Context, c *model.Colaborador) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ColaboradorRepository) Update(ctx context.Context, c *model.Colaborador) error {
	return m.Called(ctx, c).Error(0)
}

type CumplidoRepository struct{ mock.Mock }

var _ repository.CumplidoRepositoryInterface = (*CumplidoRepository)(nil)

func (m *CumplidoRepository) GetByID(ctx context.Context, id int64) (*model.Cumplido, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Cumplido)
	return v, args.Error(1)
}

func (m *CumplidoRepository) ListByNegocio(ctx context.Context, negocioID int64, desde, hasta time.Time) ([]model.Cumplido, error) {
	args := m.Called(ctx, negocioID, desde, hasta)
	v, _ := args.Get(0).([]model.Cumplido)
	return v, args.Error(1)
}

func (m *CumplidoRepository) ListByColaborador(ctx context.Context, colaboradorID int64, desde, hasta time.Time) ([]model.Cumplido, error) {
	args := m.Called(ctx, colaboradorID, desde, hasta)
	v, _ := args.Get(0).([]model.Cumplido)
	return v, args.Error(1)
}

func (m *CumplidoRepository) Assign(ctx context.Context, in model.Assignment) (*model.AssignResult, error) {
	args := m.Called(ctx, in)
	v, _ := args.Get(0).(*model.AssignResult)
	return v, args.Error(1)
}

func (m *CumplidoRepository) AssignMany(ctx context.Context, items []model.Assignment) ([]model.AssignResult, error) {
	args := m.Called(ctx, items)
	v, _ := args.Get(0).([]model.AssignResult)
	return v, args.Error(1)
}

func (m *CumplidoRepository) GetNota(ctx context.Context, cumplidoID int64) (*model.NotaCumplido, error) {
	args := m.Called(ctx, cumplidoID)
	v, _ := args.Get(0).(*model.NotaCumplido)
	return v, args.Error(1)
}

func (m *CumplidoRepository) SaveNota(ctx context.Context, cumplidoID int64, nota string) (*model.NotaResult, error) {
	args := m.Called(ctx, cumplidoID, nota)
	v, _ := args.Get(0).(*model.NotaResult)
	return v, args.Error(1)
}

func (m *CumplidoRepository) ReplaceArchivo(ctx context.Context, archivo *model.ArchivoCumplido) ([]string, error) {
	args := m.Called(ctx, archivo)
	v, _ := args.Get(0).([]string)
	return v, args.Error(1)
}

func (m *CumplidoRepository) LatestArchivo(ctx context.Context, cumplidoID int64, tipo int) (*model.ArchivoCumplido, error) {
	args := m.Called(ctx, cumplidoID, tipo)
	v, _ := args.Get(0).(*model.ArchivoCumplido)
	return v, args.Error(1)
}

func (m *CumplidoRepository) ListArchivos(ctx context.Context, cumplidoID int64) ([]model.ArchivoCumplido, error) {
	args := m.Called(ctx, cumplidoID)
	v, _ := args.Get(0).([]model.ArchivoCumplido)
	return v, args.Error(1)
}

func (m *CumplidoRepository) DeleteArchivos(ctx context.Context, cumplidoID int64) (int64, error) {
	args := m.Called(ctx, cumplidoID)
	return args.Get(0).(int64), args.Error(1)
}

type AusenciaRepository struct{ mock.Mock }

var _ repository.AusenciaRepositoryInterface = (*AusenciaRepository)(nil)

func (m *AusenciaRepository) List(ctx context.Context, f repository.AusenciaFilter) ([]model.Ausencia, error) {
	args := m.Called(ctx, f)
	v, _ := args.Get(0).([]model.Ausencia)
	return v, args.Error(1)
}

func (m *AusenciaRepository) Create(ctx context.Context, a *model.Ausencia) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AusenciaRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AusenciaRepository) Covering(ctx context.Context, colaboradorID int64, fecha time.Time) (*model.Ausencia, error) {
	args := m.Called(ctx, colaboradorID, fecha)
	v, _ := args.Get(0).(*model.Ausencia)
	return v, args.Error(1)
}

type NovedadRepository struct{ mock.Mock }

var _ repository.NovedadRepositoryInterface = (*NovedadRepository)(nil)

func (m *NovedadRepository) Create(ctx context.Context, n *model.Novedad) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NovedadRepository) List(ctx context.Context, negocioID int64, estado string) ([]model.Novedad, error) {
	args := m.Called(ctx, negocioID, estado)
	v, _ := args.Get(0).([]model.Novedad)
	return v, args.Error(1)
}

func (m *NovedadRepository) UpdateEstado(ctx context.Context, id int64, estado string) error {
	return m.Called(ctx, id, estado).Error(0)
}

type UsuarioRepository struct{ mock.Mock }

var _ repository.UsuarioRepositoryInterface = (*UsuarioRepository)(nil)

func (m *UsuarioRepository) Create(ctx context.Context, u *model.Usuario) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*model.Usuario)
	return v, args.Error(1)
}

func (m *UsuarioRepository) GetByID(ctx context.Context, id int64) (*model.Usuario, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Usuario)
	return v, args.Error(1)
}

func (m *UsuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.Usuario)
	return v, args.Error(1)
}
