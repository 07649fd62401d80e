package middleware

import (
	"net/http"

	"guardia/internal/auth"
	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffAuth authenticates admin, supervisor and operador users from the
// session cookie (or a bearer header) and loads the active Usuario.
func StaffAuth(tokens *auth.TokenManager, usuarios repository.UsuarioRepositoryInterface, cookie SessionCookie, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, problem := bearerOrCookie(c, cookie)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			cookie.Clear(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if claims.Tipo != auth.TipoUsuario {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not a staff token"})
			return
		}

		usuarioID, err := claims.SubjectID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			return
		}

		usuario, err := usuarios.GetByID(c.Request.Context(), usuarioID)
		if err != nil {
			log.Error("load usuario", zap.Int64("usuario_id", usuarioID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if usuario == nil || !usuario.Activo {
			cookie.Clear(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User is inactive or does not exist"})
			return
		}

		c.Set(UsuarioKey, usuario)
		c.Next()
	}
}

// RequirePermission rejects staff users whose role lacks p. It must run
// after StaffAuth.
func RequirePermission(p model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario, ok := CurrentUsuario(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if !usuario.Rol.Can(p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You don't have permission to access this resource"})
			return
		}
		c.Next()
	}
}
