package repository

import (
	"context"
	"errors"
	"time"

	"guardia/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CumplidoRepository struct {
	db *gorm.DB
}

type CumplidoRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*model.Cumplido, error)
	ListByNegocio(ctx context.Context, negocioID int64, desde, hasta time.Time) ([]model.Cumplido, error)
	ListByColaborador(ctx context.Context, colaboradorID int64, desde, hasta time.Time) ([]model.Cumplido, error)
	Assign(ctx context.Context, in model.Assignment) (*model.AssignResult, error)
	AssignMany(ctx context.Context, items []model.Assignment) ([]model.AssignResult, error)
	GetNota(ctx context.Context, cumplidoID int64) (*model.NotaCumplido, error)
	SaveNota(ctx context.Context, cumplidoID int64, nota string) (*model.NotaResult, error)
	ReplaceArchivo(ctx context.Context, archivo *model.ArchivoCumplido) ([]string, error)
	LatestArchivo(ctx context.Context, cumplidoID int64, tipo int) (*model.ArchivoCumplido, error)
	ListArchivos(ctx context.Context, cumplidoID int64) ([]model.ArchivoCumplido, error)
	DeleteArchivos(ctx context.Context, cumplidoID int64) (int64, error)
}

var _ CumplidoRepositoryInterface = (*CumplidoRepository)(nil)

func NewCumplidoRepository(db *gorm.DB) *CumplidoRepository {
	return &CumplidoRepository{db: db}
}

func (r *CumplidoRepository) GetByID(ctx context.Context, id int64) (*model.Cumplido, error) {
	var c model.Cumplido
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCumplidoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByNegocio returns the cumplidos of every puesto of the negocio between
// desde and hasta, both inclusive, with their notes.
func (r *CumplidoRepository) ListByNegocio(ctx context.Context, negocioID int64, desde, hasta time.Time) ([]model.Cumplido, error) {
	var cumplidos []model.Cumplido
	err := r.db.WithContext(ctx).
		Preload("Nota").
		Joins("JOIN puestos ON puestos.id = cumplidos.puesto_id").
		Joins("JOIN unidades_negocio ON unidades_negocio.id = puestos.unidad_negocio_id").
		Where("unidades_negocio.negocio_id = ? AND cumplidos.fecha BETWEEN ? AND ?", negocioID, desde, hasta).
		Order("cumplidos.fecha, cumplidos.puesto_id, cumplidos.tipo_turno_id").
		Find(&cumplidos).Error
	return cumplidos, err
}

func (r *CumplidoRepository) ListByColaborador(ctx context.Context, colaboradorID int64, desde, hasta time.Time) ([]model.Cumplido, error) {
	var cumplidos []model.Cumplido
	err := r.db.WithContext(ctx).
		Where("colaborador_id = ? AND fecha BETWEEN ? AND ?", colaboradorID, desde, hasta).
		Order("fecha, tipo_turno_id").
		Find(&cumplidos).Error
	return cumplidos, err
}

// Assign performs the assignment upsert of one (puesto, fecha, tipo turno)
// slot inside a transaction.
func (r *CumplidoRepository) Assign(ctx context.Context, in model.Assignment) (*model.AssignResult, error) {
	var res *model.AssignResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = assign(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AssignMany applies every assignment in a single transaction. The first
// failing row aborts the whole import and is reported as an *ImportError.
func (r *CumplidoRepository) AssignMany(ctx context.Context, items []model.Assignment) ([]model.AssignResult, error) {
	results := make([]model.AssignResult, 0, len(items))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, in := range items {
			res, err := assign(tx, in)
			if err != nil {
				return &ImportError{Index: i, Err: err}
			}
			results = append(results, *res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func assign(tx *gorm.DB, in model.Assignment) (*model.AssignResult, error) {
	if in.ColaboradorID != nil {
		// Serializes concurrent assignments of the same colaborador until commit.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", *in.ColaboradorID).Error; err != nil {
			return nil, err
		}

		var otros int64
		err := tx.Model(&model.Cumplido{}).
			Where("colaborador_id = ? AND fecha = ? AND NOT (puesto_id = ? AND tipo_turno_id = ?)",
				*in.ColaboradorID, in.Fecha, in.PuestoID, in.TipoTurnoID).
			Count(&otros).Error
		if err != nil {
			return nil, err
		}
		if otros > 0 {
			return nil, ErrColaboradorOcupado
		}
	}

	var existing model.Cumplido
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("puesto_id = ? AND fecha = ? AND tipo_turno_id = ?", in.PuestoID, in.Fecha, in.TipoTurnoID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c := model.Cumplido{
			PuestoID:      in.PuestoID,
			Fecha:         in.Fecha,
			TipoTurnoID:   in.TipoTurnoID,
			ColaboradorID: in.ColaboradorID,
		}
		if err := tx.Create(&c).Error; err != nil {
			return nil, writeErr(err)
		}
		return &model.AssignResult{Action: model.AssignCreated, CumplidoID: c.ID}, nil
	}
	if err != nil {
		return nil, err
	}

	if in.ColaboradorID == nil {
		var notas int64
		if err := tx.Model(&model.NotaCumplido{}).Where("cumplido_id = ?", existing.ID).Count(&notas).Error; err != nil {
			return nil, err
		}

		if notas > 0 {
			if err := tx.Model(&model.Cumplido{}).Where("id = ?", existing.ID).Update("colaborador_id", nil).Error; err != nil {
				return nil, err
			}
			return &model.AssignResult{Action: model.AssignKept, CumplidoID: existing.ID}, nil
		}

		keys, err := deleteCumplido(tx, existing.ID)
		if err != nil {
			return nil, err
		}
		return &model.AssignResult{Action: model.AssignRemoved, CumplidoID: existing.ID, OrphanedKeys: keys}, nil
	}

	if err := tx.Model(&model.Cumplido{}).Where("id = ?", existing.ID).Update("colaborador_id", *in.ColaboradorID).Error; err != nil {
		return nil, writeErr(err)
	}
	return &model.AssignResult{Action: model.AssignUpdated, CumplidoID: existing.ID}, nil
}

// deleteCumplido removes the row (notes and attachment rows cascade) and
// returns the storage keys of the attachments it had.
func deleteCumplido(tx *gorm.DB, id int64) ([]string, error) {
	var keys []string
	if err := tx.Model(&model.ArchivoCumplido{}).Where("cumplido_id = ?", id).Pluck("object_key", &keys).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&model.Cumplido{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *CumplidoRepository) GetNota(ctx context.Context, cumplidoID int64) (*model.NotaCumplido, error) {
	var nota model.NotaCumplido
	err := r.db.WithContext(ctx).Where("cumplido_id = ?", cumplidoID).First(&nota).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nota, nil
}

// SaveNota creates, updates or deletes the note of a cumplido. Deleting the
// note of a cumplido without colaborador deletes the cumplido too.
func (r *CumplidoRepository) SaveNota(ctx context.Context, cumplidoID int64, texto string) (*model.NotaResult, error) {
	var res *model.NotaResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Cumplido
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "id = ?", cumplidoID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCumplidoNotFound
		}
		if err != nil {
			return err
		}

		var nota model.NotaCumplido
		err = tx.Where("cumplido_id = ?", cumplidoID).First(&nota).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch {
		case texto != "" && !found:
			nota = model.NotaCumplido{CumplidoID: cumplidoID, Nota: texto}
			if err := tx.Create(&nota).Error; err != nil {
				return err
			}
			res = &model.NotaResult{Action: model.NotaCreated}
		case texto != "":
			if err := tx.Model(&model.NotaCumplido{}).Where("id = ?", nota.ID).Update("nota", texto).Error; err != nil {
				return err
			}
			res = &model.NotaResult{Action: model.NotaUpdated}
		case !found:
			res = &model.NotaResult{Action: model.NotaNoop}
		default:
			if err := tx.Delete(&model.NotaCumplido{}, "id = ?", nota.ID).Error; err != nil {
				return err
			}
			res = &model.NotaResult{Action: model.NotaDeleted}
			if c.ColaboradorID == nil {
				keys, err := deleteCumplido(tx, c.ID)
				if err != nil {
					return err
				}
				res.CumplidoDeleted = true
				res.OrphanedKeys = keys
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReplaceArchivo stores archivo as the only attachment of its type and
// returns the storage keys of the rows it replaced.
func (r *CumplidoRepository) ReplaceArchivo(ctx context.Context, archivo *model.ArchivoCumplido) ([]string, error) {
	var replaced []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := tx.Model(&model.ArchivoCumplido{}).
			Where("cumplido_id = ? AND tipo_archivo_id = ?", archivo.CumplidoID, archivo.TipoArchivoID)
		if err := scope.Pluck("object_key", &replaced).Error; err != nil {
			return err
		}
		if len(replaced) > 0 {
			err := tx.Where("cumplido_id = ? AND tipo_archivo_id = ?", archivo.CumplidoID, archivo.TipoArchivoID).
				Delete(&model.ArchivoCumplido{}).Error
			if err != nil {
				return err
			}
		}
		return writeErr(tx.Create(archivo).Error)
	})
	if err != nil {
		return nil, err
	}
	return replaced, nil
}

func (r *CumplidoRepository) LatestArchivo(ctx context.Context, cumplidoID int64, tipo int) (*model.ArchivoCumplido, error) {
	var a model.ArchivoCumplido
	err := r.db.WithContext(ctx).
		Where("cumplido_id = ? AND tipo_archivo_id = ?", cumplidoID, tipo).
		Order("created_at DESC, id DESC").
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *CumplidoRepository) ListArchivos(ctx context.Context, cumplidoID int64) ([]model.ArchivoCumplido, error) {
	var archivos []model.ArchivoCumplido
	err := r.db.WithContext(ctx).Where("cumplido_id = ?", cumplidoID).Order("id").Find(&archivos).Error
	return archivos, err
}

func (r *CumplidoRepository) DeleteArchivos(ctx context.Context, cumplidoID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("cumplido_id = ?", cumplidoID).Delete(&model.ArchivoCumplido{})
	return result.RowsAffected, result.Error
}
