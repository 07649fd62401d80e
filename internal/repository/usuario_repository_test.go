package repository_test

import (
	"context"
	"testing"

	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUsuarioRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewUsuarioRepository(gormDB)

	u := &model.Usuario{
		Email:        "admin@example.com",
		Nombre:       "Admin",
		PasswordHash: "hashed_password",
		Rol:          model.RoleAdmin,
		Activo:       true,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	// Act
	err := repo.Create(context.Background(), u)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_FindByEmail_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewUsuarioRepository(gormDB)

	email := "admin@example.com"
	mock.ExpectQuery(`SELECT .* FROM "usuarios" WHERE email = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nombre", "password_hash", "rol", "activo"}).
			AddRow(3, email, "Admin", "hash", "admin", true))

	// Act
	u, err := repo.FindByEmail(context.Background(), email)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, model.RoleAdmin, u.Rol)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_FindByEmail_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewUsuarioRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "usuarios" WHERE email = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	u, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_FindByEmail_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewUsuarioRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "usuarios" WHERE email = .*`).
		WillReturnError(assert.AnError)

	// Act
	u, err := repo.FindByEmail(context.Background(), "admin@example.com")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}
