package middleware

import (
	"errors"
	"net/http"

	"guardia/internal/hashid"
	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NegocioHashHeader carries the obfuscated negocio id on guard routes.
const NegocioHashHeader = "X-Negocio-Hash"

var errNegocioNotFound = errors.New("negocio not found")

// resolveNegocio decodes hash and loads the negocio. Unknown hashes and
// missing rows both yield errNegocioNotFound.
func resolveNegocio(c *gin.Context, codec *hashid.Codec, negocios repository.NegocioRepositoryInterface, hash string) (*model.Negocio, error) {
	id, err := codec.Decode(hash)
	if err != nil {
		return nil, errNegocioNotFound
	}
	negocio, err := negocios.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNegocioNotFound) {
		return nil, errNegocioNotFound
	}
	return negocio, err
}

// NegocioFromHeader resolves the negocio of the X-Negocio-Hash header for the
// public guard endpoints that run before login. Inactive negocios are
// reported as not found.
func NegocioFromHeader(codec *hashid.Codec, negocios repository.NegocioRepositoryInterface, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		negocio, err := resolveNegocio(c, codec, negocios, c.GetHeader(NegocioHashHeader))
		if errors.Is(err, errNegocioNotFound) || (err == nil && !negocio.Activo) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Negocio not found"})
			return
		}
		if err != nil {
			log.Error("resolve negocio", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(NegocioKey, negocio)
		c.Next()
	}
}
