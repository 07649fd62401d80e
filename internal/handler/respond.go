package handler

import (
	"errors"
	"net/http"

	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps repository errors to a status and a client-facing message.
// Unknown errors are 500 with a generic message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrNegocioNotFound),
		errors.Is(err, repository.ErrUnidadNotFound),
		errors.Is(err, repository.ErrPuestoNotFound),
		errors.Is(err, repository.ErrColaboradorNotFound),
		errors.Is(err, repository.ErrCumplidoNotFound),
		errors.Is(err, repository.ErrAusenciaNotFound),
		errors.Is(err, repository.ErrNovedadNotFound):
		return http.StatusNotFound, capitalize(err.Error())
	case errors.Is(err, repository.ErrColaboradorOcupado):
		return http.StatusBadRequest, "Colaborador already assigned elsewhere on that date"
	case errors.Is(err, repository.ErrInvalidReference):
		return http.StatusBadRequest, "Referenced record does not exist"
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict, "Record already exists"
	case errors.Is(err, repository.ErrAusenciaSolapada):
		return http.StatusConflict, "Ausencia overlaps an existing one"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondError writes the error envelope for err and logs the 500s.
func respondError(c *gin.Context, log *zap.Logger, op string, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(op, zap.Error(err), zap.String("path", c.FullPath()))
	}

	body := gin.H{"error": msg}
	var importErr *repository.ImportError
	if errors.As(err, &importErr) {
		body["index"] = importErr.Index
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
