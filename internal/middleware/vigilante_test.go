package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardia/internal/auth"
	"guardia/internal/hashid"
	"guardia/internal/middleware"
	"guardia/internal/model"
	"guardia/internal/repository"
	"guardia/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const jwtSecret = "test-secret-key"

type vigilanteFixture struct {
	router        *gin.Engine
	tokens        *auth.TokenManager
	codec         *hashid.Codec
	negocios      *mocks.NegocioRepository
	colaboradores *mocks.ColaboradorRepository
}

func setupVigilanteRouter(t *testing.T) *vigilanteFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := hashid.New("test-salt", 8)
	require.NoError(t, err)

	f := &vigilanteFixture{
		router:        gin.New(),
		tokens:        auth.NewTokenManager(jwtSecret),
		codec:         codec,
		negocios:      new(mocks.NegocioRepository),
		colaboradores: new(mocks.ColaboradorRepository),
	}

	protected := f.router.Group("/vigilante")
	protected.Use(middleware.VigilanteAuth(middleware.VigilanteAuthConfig{
		Tokens:        f.tokens,
		Codec:         codec,
		Negocios:      f.negocios,
		Colaboradores: f.colaboradores,
		Cookie:        middleware.SessionCookie{Name: middleware.VigilanteCookieName},
		Log:           zap.NewNop(),
	}))
	protected.GET("/me", func(c *gin.Context) {
		col, ok := middleware.CurrentColaborador(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "colaborador not in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "colaborador_id": col.ID})
	})
	return f
}

func (f *vigilanteFixture) hash(t *testing.T, negocioID int64) string {
	h, err := f.codec.Encode(negocioID)
	require.NoError(t, err)
	return h
}

func (f *vigilanteFixture) do(token, hash string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/vigilante/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if hash != "" {
		req.Header.Set(middleware.NegocioHashHeader, hash)
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func TestVigilanteAuth_ValidToken(t *testing.T) {
	// Arrange
	f := setupVigilanteRouter(t)
	token, _ := f.tokens.GenerateVigilanteToken(5, 3, time.Hour)
	f.negocios.On("GetByID", mock.Anything, int64(3)).Return(&model.Negocio{ID: 3, Activo: true}, nil)
	f.colaboradores.On("GetByID", mock.Anything, int64(5)).Return(&model.Colaborador{ID: 5, NegocioID: 3, Activo: true}, nil)

	// Act
	resp := f.do(token, f.hash(t, 3))

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"colaborador_id":5`)
}

func TestVigilanteAuth_NoToken(t *testing.T) {
	f := setupVigilanteRouter(t)

	resp := f.do("", f.hash(t, 3))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error"`)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
}

func TestVigilanteAuth_InvalidAuthFormat(t *testing.T) {
	f := setupVigilanteRouter(t)

	req, _ := http.NewRequest("GET", "/vigilante/me", nil)
	req.Header.Set("Authorization", "InvalidFormat token123")
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header format must be Bearer {token}")
}

func TestVigilanteAuth_ExpiredTokenClearsCookie(t *testing.T) {
	// Arrange
	f := setupVigilanteRouter(t)
	claims := jwt.MapClaims{
		"sub":        "5",
		"tipo":       auth.TipoVigilante,
		"negocio_id": 3,
		"exp":        time.Now().Add(-time.Hour).Unix(),
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))

	// Act
	resp := f.do(expired, f.hash(t, 3))

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
	assert.Contains(t, resp.Header().Get("Set-Cookie"), middleware.VigilanteCookieName+"=;")
}

func TestVigilanteAuth_StaffTokenRejected(t *testing.T) {
	f := setupVigilanteRouter(t)
	token, _ := f.tokens.GenerateUsuarioToken(1, "admin", time.Hour)

	resp := f.do(token, f.hash(t, 3))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Token is not a vigilante token")
}

func TestVigilanteAuth_UnknownHash(t *testing.T) {
	f := setupVigilanteRouter(t)
	token, _ := f.tokens.GenerateVigilanteToken(5, 3, time.Hour)

	resp := f.do(token, "not-a-hash")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error"`)
}

func TestVigilanteAuth_HashOfMissingNegocio(t *testing.T) {
	f := setupVigilanteRouter(t)
	token, _ := f.tokens.GenerateVigilanteToken(5, 3, time.Hour)
	f.negocios.On("GetByID", mock.Anything, int64(9)).Return(nil, repository.ErrNegocioNotFound)

	resp := f.do(token, f.hash(t, 9))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestVigilanteAuth_TokenForOtherNegocio(t *testing.T) {
	f := setupVigilanteRouter(t)
	token, _ := f.tokens.GenerateVigilanteToken(5, 3, time.Hour)
	f.negocios.On("GetByID", mock.Anything, int64(4)).Return(&model.Negocio{ID: 4, Activo: true}, nil)

	resp := f.do(token, f.hash(t, 4))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVigilanteAuth_InactiveColaborador(t *testing.T) {
	f := setupVigilanteRouter(t)
	token, _ := f.tokens.GenerateVigilanteToken(5, 3, time.Hour)
	f.negocios.On("GetByID", mock.Anything, int64(3)).Return(&model.Negocio{ID: 3, Activo: true}, nil)
	f.colaboradores.On("GetByID", mock.Anything, int64(5)).Return(&model.Colaborador{ID: 5, NegocioID: 3, Activo: false}, nil)

	resp := f.do(token, f.hash(t, 3))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVigilanteAuth_InactiveNegocio(t *testing.T) {
	f := setupVigilanteRouter(t)
	token, _ := f.tokens.GenerateVigilanteToken(5, 3, time.Hour)
	f.negocios.On("GetByID", mock.Anything, int64(3)).Return(&model.Negocio{ID: 3, Activo: false}, nil)

	resp := f.do(token, f.hash(t, 3))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	f.colaboradores.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
