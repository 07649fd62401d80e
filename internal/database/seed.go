package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"guardia/internal/auth"
	"guardia/internal/model"
	"guardia/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrWeakPassword = errors.New("admin password must have at least 8 characters")

// SeedAdmin creates the first admin user. It is idempotent: when a user with
// the email already exists nothing changes and created is false.
func SeedAdmin(ctx context.Context, usuarios repository.UsuarioRepositoryInterface, email, nombre, password string, log *zap.Logger) (created bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(nombre) == "" {
		return false, errors.New("email and name are required")
	}

	existing, err := usuarios.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("find admin: %w", err)
	}
	if existing != nil {
		log.Info("admin already exists, nothing to do", zap.String("email", email))
		return false, nil
	}
	if len(password) < 8 {
		return false, ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	err = usuarios.Create(ctx, &model.Usuario{
		Email:        email,
		Nombre:       strings.TrimSpace(nombre),
		PasswordHash: hash,
		Rol:          model.RoleAdmin,
		Activo:       true,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		log.Info("admin created concurrently, nothing to do", zap.String("email", email))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	log.Info("admin created", zap.String("email", email))
	return true, nil
}

var (
	defaultTiposTurno = []model.TipoTurno{
		{Nombre: "Diurno", HoraInicio: "06:00", HoraFin: "18:00", Activo: true},
		{Nombre: "Nocturno", HoraInicio: "18:00", HoraFin: "06:00", Activo: true},
	}
	defaultTiposAusencia = []string{"Vacaciones", "Incapacidad", "Permiso", "Licencia"}
	defaultTiposNovedad  = []string{"Intrusión", "Daño a la propiedad", "Falla de equipos", "Otro"}
)

// SeedCatalogs inserts the default shift, absence and novedad types that are
// missing, matching by name.
func SeedCatalogs(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range defaultTiposTurno {
			row := t
			if err := tx.Where(model.TipoTurno{Nombre: t.Nombre}).Attrs(t).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed tipo turno %q: %w", t.Nombre, err)
			}
		}
		for _, nombre := range defaultTiposAusencia {
			var row model.TipoAusencia
			if err := tx.Where(model.TipoAusencia{Nombre: nombre}).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed tipo ausencia %q: %w", nombre, err)
			}
		}
		for _, nombre := range defaultTiposNovedad {
			var row model.TipoNovedad
			if err := tx.Where(model.TipoNovedad{Nombre: nombre}).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed tipo novedad %q: %w", nombre, err)
			}
		}
		log.Info("catalogs seeded")
		return nil
	})
}
