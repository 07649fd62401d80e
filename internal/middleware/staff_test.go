package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardia/internal/auth"
	"guardia/internal/middleware"
	"guardia/internal/model"
	"guardia/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func setupStaffRouter() (*gin.Engine, *mocks.UsuarioRepository, *auth.TokenManager) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tokens := auth.NewTokenManager(jwtSecret)
	usuarios := new(mocks.UsuarioRepository)
	cookie := middleware.SessionCookie{Name: middleware.SessionCookieName}

	protected := r.Group("/api")
	protected.Use(middleware.StaffAuth(tokens, usuarios, cookie, zap.NewNop()))
	protected.GET("/cumplidos", middleware.RequirePermission(model.PermCumplidos), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	protected.GET("/usuarios", middleware.RequirePermission(model.PermUsuarios), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r, usuarios, tokens
}

func TestStaffAuth_CookieSession(t *testing.T) {
	// Arrange
	router, usuarios, tokens := setupStaffRouter()
	token, _ := tokens.GenerateUsuarioToken(2, "operador", time.Hour)
	usuarios.On("GetByID", mock.Anything, int64(2)).Return(&model.Usuario{ID: 2, Rol: model.RoleOperador, Activo: true}, nil)

	req, _ := http.NewRequest("GET", "/api/cumplidos", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestStaffAuth_MissingPermission(t *testing.T) {
	router, usuarios, tokens := setupStaffRouter()
	token, _ := tokens.GenerateUsuarioToken(2, "operador", time.Hour)
	usuarios.On("GetByID", mock.Anything, int64(2)).Return(&model.Usuario{ID: 2, Rol: model.RoleOperador, Activo: true}, nil)

	req, _ := http.NewRequest("GET", "/api/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestStaffAuth_NoSession(t *testing.T) {
	router, _, _ := setupStaffRouter()

	req, _ := http.NewRequest("GET", "/api/cumplidos", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
}

func TestStaffAuth_VigilanteTokenRejected(t *testing.T) {
	router, _, tokens := setupStaffRouter()
	token, _ := tokens.GenerateVigilanteToken(5, 3, time.Hour)

	req, _ := http.NewRequest("GET", "/api/cumplidos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestStaffAuth_InactiveUser(t *testing.T) {
	router, usuarios, tokens := setupStaffRouter()
	token, _ := tokens.GenerateUsuarioToken(2, "admin", time.Hour)
	usuarios.On("GetByID", mock.Anything, int64(2)).Return(&model.Usuario{ID: 2, Rol: model.RoleAdmin, Activo: false}, nil)

	req, _ := http.NewRequest("GET", "/api/cumplidos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestStaffAuth_InvalidToken(t *testing.T) {
	router, _, _ := setupStaffRouter()

	req, _ := http.NewRequest("GET", "/api/cumplidos", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}
