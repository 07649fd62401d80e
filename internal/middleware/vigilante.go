package middleware

import (
	"errors"
	"net/http"

	"guardia/internal/auth"
	"guardia/internal/hashid"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VigilanteAuthConfig struct {
	Tokens        *auth.TokenManager
	Codec         *hashid.Codec
	Negocios      repository.NegocioRepositoryInterface
	Colaboradores repository.ColaboradorRepositoryInterface
	Cookie        SessionCookie
	Log           *zap.Logger
}

// VigilanteAuth guards the vigilante routes. The bearer token must be a valid
// vigilante token, the X-Negocio-Hash header must resolve to the negocio the
// token was issued for, and both the negocio and the colaborador must still
// be active. Nothing is cached between requests.
func VigilanteAuth(cfg VigilanteAuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, problem := bearerOrCookie(c, cfg.Cookie)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		claims, err := cfg.Tokens.ParseToken(tokenStr)
		if err != nil {
			cfg.Cookie.Clear(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if claims.Tipo != auth.TipoVigilante {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not a vigilante token"})
			return
		}
		colaboradorID, err := claims.SubjectID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid colaborador ID in token"})
			return
		}

		negocio, err := resolveNegocio(c, cfg.Codec, cfg.Negocios, c.GetHeader(NegocioHashHeader))
		if errors.Is(err, errNegocioNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Negocio not found"})
			return
		}
		if err != nil {
			cfg.Log.Error("resolve negocio", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !negocio.Activo || negocio.ID != claims.NegocioID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid for this negocio"})
			return
		}

		colaborador, err := cfg.Colaboradores.GetByID(c.Request.Context(), colaboradorID)
		if errors.Is(err, repository.ErrColaboradorNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Colaborador is inactive or does not exist"})
			return
		}
		if err != nil {
			cfg.Log.Error("load colaborador", zap.Int64("colaborador_id", colaboradorID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !colaborador.Activo || colaborador.NegocioID != negocio.ID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Colaborador is inactive or does not exist"})
			return
		}

		c.Set(NegocioKey, negocio)
		c.Set(ColaboradorKey, colaborador)
		c.Set(ColaboradorIDKey, colaboradorID)
		c.Next()
	}
}
