package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Common repository errors
var (
	ErrNegocioNotFound     = errors.New("negocio not found")
	ErrUnidadNotFound      = errors.New("unidad de negocio not found")
	ErrPuestoNotFound      = errors.New("puesto not found")
	ErrColaboradorNotFound = errors.New("colaborador not found")
	ErrCumplidoNotFound    = errors.New("cumplido not found")
	ErrAusenciaNotFound    = errors.New("ausencia not found")
	ErrNovedadNotFound     = errors.New("novedad not found")

	// ErrDuplicate is returned when a unique constraint rejects a write
	ErrDuplicate = errors.New("duplicate record")

	// ErrColaboradorOcupado is returned when the colaborador already holds
	// another shift type on the same day
	ErrColaboradorOcupado = errors.New("colaborador already assigned elsewhere on that date")

	// ErrInvalidReference is returned when a foreign key points to a missing row
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrAusenciaSolapada is returned when absences of one colaborador overlap
	ErrAusenciaSolapada = errors.New("ausencia overlaps an existing one")
)

// ImportError wraps the failure of one row of a bulk import.
type ImportError struct {
	Index int
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// writeErr maps the constraint errors gorm translates into repository errors.
func writeErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	}
	return err
}
