package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guardia/internal/auth"
	"guardia/internal/handler"
	"guardia/internal/hashid"
	"guardia/internal/middleware"
	"guardia/internal/model"
	"guardia/internal/repository"
	"guardia/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type vigilanteFixture struct {
	router        *gin.Engine
	codec         *hashid.Codec
	tokens        *auth.TokenManager
	negocios      *mocks.NegocioRepository
	colaboradores *mocks.ColaboradorRepository
	cumplidos     *mocks.CumplidoRepository
	puestos       *mocks.PuestoRepository
	tipos         *mocks.CatalogRepository[model.TipoNovedad]
	novedades     *mocks.NovedadRepository
	store         *memStore
}

func setupVigilanteTest(t *testing.T) *vigilanteFixture {
	gin.SetMode(gin.TestMode)
	codec, err := hashid.New("test-salt", 8)
	require.NoError(t, err)

	f := &vigilanteFixture{
		router:        gin.New(),
		codec:         codec,
		tokens:        auth.NewTokenManager(testSecret),
		negocios:      new(mocks.NegocioRepository),
		colaboradores: new(mocks.ColaboradorRepository),
		cumplidos:     new(mocks.CumplidoRepository),
		puestos:       new(mocks.PuestoRepository),
		tipos:         new(mocks.CatalogRepository[model.TipoNovedad]),
		novedades:     new(mocks.NovedadRepository),
		store:         newMemStore(),
	}
	cookie := middleware.SessionCookie{Name: middleware.VigilanteCookieName}
	log := zap.NewNop()

	h := handler.NewVigilanteHandler(handler.VigilanteDeps{
		Colaboradores: f.colaboradores,
		Cumplidos:     f.cumplidos,
		Puestos:       f.puestos,
		TiposNovedad:  f.tipos,
		Novedades:     f.novedades,
		Store:         f.store,
		Tokens:        f.tokens,
		Cookie:        cookie,
		TTL:           time.Hour,
		MaxUpload:     1 << 20,
		Log:           log,
	})
	negocioHandler := handler.NewNegocioHandler(f.negocios, codec, "https://guardia.test/", log)

	f.router.GET("/api/publico/negocios/:hash", negocioHandler.Publico)
	f.router.POST("/api/vigilante/login", middleware.NegocioFromHeader(codec, f.negocios, log), h.Login)
	guarded := f.router.Group("/api/vigilante", middleware.VigilanteAuth(middleware.VigilanteAuthConfig{
		Tokens:        f.tokens,
		Codec:         codec,
		Negocios:      f.negocios,
		Colaboradores: f.colaboradores,
		Cookie:        cookie,
		Log:           log,
	}))
	guarded.GET("/me", h.Me)
	guarded.GET("/cumplidos", h.Cumplidos)
	guarded.GET("/puestos", h.Puestos)
	guarded.POST("/novedades", h.CreateNovedad)
	return f
}

func (f *vigilanteFixture) hash(t *testing.T, id int64) string {
	t.Helper()
	h, err := f.codec.Encode(id)
	require.NoError(t, err)
	return h
}

// loggedIn stubs the lookups VigilanteAuth makes and returns a valid token
// for colaborador 5 of negocio 3.
func (f *vigilanteFixture) loggedIn(t *testing.T) string {
	t.Helper()
	f.negocios.On("GetByID", mock.Anything, int64(3)).Return(&model.Negocio{ID: 3, Nombre: "Torres del Parque", Activo: true}, nil)
	f.colaboradores.On("GetByID", mock.Anything, int64(5)).Return(&model.Colaborador{
		ID: 5, NegocioID: 3, Nombres: "Ana", Apellidos: "Rojas", Cedula: "1020", Activo: true,
	}, nil)
	token, err := f.tokens.GenerateVigilanteToken(5, 3, time.Hour)
	require.NoError(t, err)
	return token
}

func TestVigilanteLogin_Success(t *testing.T) {
	// Arrange
	f := setupVigilanteTest(t)
	f.negocios.On("GetByID", mock.Anything, int64(3)).Return(&model.Negocio{ID: 3, Nombre: "Torres", Activo: true}, nil)
	f.colaboradores.On("FindByCedula", mock.Anything, int64(3), "1020").Return(&model.Colaborador{ID: 5, NegocioID: 3, Activo: true}, nil)

	req, _ := http.NewRequest("POST", "/api/vigilante/login", strings.NewReader(`{"cedula":" 1020 "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))

	// Act
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	claims, err := f.tokens.ParseToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.TipoVigilante, claims.Tipo)
	assert.Equal(t, int64(3), claims.NegocioID)
	assert.Contains(t, resp.Header().Get("Set-Cookie"), middleware.VigilanteCookieName+"=")
}

func TestVigilanteLogin_UnknownCedula(t *testing.T) {
	f := setupVigilanteTest(t)
	f.negocios.On("GetByID", mock.Anything, int64(3)).Return(&model.Negocio{ID: 3, Activo: true}, nil)
	f.colaboradores.On("FindByCedula", mock.Anything, int64(3), "999").Return(nil, nil)

	req, _ := http.NewRequest("POST", "/api/vigilante/login", strings.NewReader(`{"cedula":"999"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVigilanteLogin_UnknownHash(t *testing.T) {
	f := setupVigilanteTest(t)

	req, _ := http.NewRequest("POST", "/api/vigilante/login", strings.NewReader(`{"cedula":"1020"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.NegocioHashHeader, "not-a-hash")
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	f.colaboradores.AssertNotCalled(t, "FindByCedula", mock.Anything, mock.Anything, mock.Anything)
}

func TestVigilanteRoute_MissingAuthorization(t *testing.T) {
	f := setupVigilanteTest(t)

	req, _ := http.NewRequest("GET", "/api/vigilante/me", nil)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestVigilanteMe(t *testing.T) {
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)

	req, _ := http.NewRequest("GET", "/api/vigilante/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Ana Rojas")
	assert.Contains(t, resp.Body.String(), "Torres del Parque")
}

func TestVigilanteCumplidos_OwnRange(t *testing.T) {
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)
	desde := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	colID := int64(5)
	f.cumplidos.On("ListByColaborador", mock.Anything, int64(5), desde, desde.AddDate(0, 0, 13)).
		Return([]model.Cumplido{{ID: 1, PuestoID: 2, Fecha: desde, TipoTurnoID: 1, ColaboradorID: &colID}}, nil)

	req, _ := http.NewRequest("GET", "/api/vigilante/cumplidos?desde=2024-01-10", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	f.cumplidos.AssertExpectations(t)
}

func TestVigilantePuestos_OnlyActive(t *testing.T) {
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)
	f.puestos.On("ListByNegocio", mock.Anything, int64(3)).Return([]model.Puesto{
		{ID: 1, Nombre: "Portería", Activo: true},
		{ID: 2, Nombre: "Sótano", Activo: false},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/vigilante/puestos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Puestos []model.Puesto `json:"puestos"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Puestos, 1)
	assert.Equal(t, "Portería", body.Puestos[0].Nombre)
}

func TestVigilanteCreateNovedad_WithImage(t *testing.T) {
	// Arrange
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)
	f.puestos.On("NegocioID", mock.Anything, int64(2)).Return(int64(3), nil)
	f.tipos.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	f.novedades.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Novedad) bool {
		return n.NegocioID == 3 && n.ColaboradorID == 5 && n.PuestoID == 2 &&
			n.Estado == model.EstadoPendiente && n.ImagenURL != nil &&
			strings.HasPrefix(*n.ObjectKey, "novedades/3/")
	})).Return(nil)

	body, contentType := multipartBody(t, "imagen", "foto.jpg", []byte("img"), map[string]string{
		"puesto_id": "2", "tipo_novedad_id": "1", "descripcion": "Puerta forzada",
	})
	req, _ := http.NewRequest("POST", "/api/vigilante/novedades", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))

	// Act
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Len(t, f.store.objects, 1)
	f.novedades.AssertExpectations(t)
}

func TestVigilanteCreateNovedad_PuestoOfOtherNegocio(t *testing.T) {
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)
	f.puestos.On("NegocioID", mock.Anything, int64(8)).Return(int64(4), nil)

	body, contentType := multipartBody(t, "", "", nil, map[string]string{
		"puesto_id": "8", "tipo_novedad_id": "1", "descripcion": "x",
	})
	req, _ := http.NewRequest("POST", "/api/vigilante/novedades", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	f.novedades.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVigilanteCreateNovedad_ImageTooLarge(t *testing.T) {
	// Arrange
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)
	f.puestos.On("NegocioID", mock.Anything, int64(2)).Return(int64(3), nil)
	f.tipos.On("Exists", mock.Anything, int64(1)).Return(true, nil)

	body, contentType := multipartBody(t, "imagen", "foto.jpg", bytes.Repeat([]byte("x"), 5<<19), map[string]string{
		"puesto_id": "2", "tipo_novedad_id": "1", "descripcion": "Puerta forzada",
	})
	req := httptest.NewRequest("POST", "/api/vigilante/novedades", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))

	// Act
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "File too large")
	assert.Empty(t, f.store.objects)
	f.novedades.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVigilanteCreateNovedad_ImageOverUploadLimit(t *testing.T) {
	// Arrange
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)
	f.puestos.On("NegocioID", mock.Anything, int64(2)).Return(int64(3), nil)
	f.tipos.On("Exists", mock.Anything, int64(1)).Return(true, nil)

	body, contentType := multipartBody(t, "imagen", "foto.jpg", bytes.Repeat([]byte("x"), 3<<19), map[string]string{
		"puesto_id": "2", "tipo_novedad_id": "1", "descripcion": "Puerta forzada",
	})
	req := httptest.NewRequest("POST", "/api/vigilante/novedades", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))

	// Act
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "File too large")
	f.novedades.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVigilanteCreateNovedad_MissingFields(t *testing.T) {
	f := setupVigilanteTest(t)
	token := f.loggedIn(t)

	body, contentType := multipartBody(t, "", "", nil, map[string]string{"puesto_id": "2"})
	req, _ := http.NewRequest("POST", "/api/vigilante/novedades", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.NegocioHashHeader, f.hash(t, 3))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestPublicoNegocio(t *testing.T) {
	f := setupVigilanteTest(t)
	f.negocios.On("GetByID", mock.Anything, int64(3)).Return(&model.Negocio{ID: 3, Nombre: "Torres", Activo: true}, nil)
	f.negocios.On("GetByID", mock.Anything, int64(4)).Return(&model.Negocio{ID: 4, Nombre: "Cerrado", Activo: false}, nil)
	f.negocios.On("GetByID", mock.Anything, int64(6)).Return(nil, repository.ErrNegocioNotFound)

	cases := []struct {
		name   string
		hash   string
		status int
	}{
		{"active", f.hash(t, 3), http.StatusOK},
		{"inactive", f.hash(t, 4), http.StatusNotFound},
		{"missing row", f.hash(t, 6), http.StatusNotFound},
		{"garbage", "not-a-hash", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/api/publico/negocios/"+tc.hash, nil)
			resp := httptest.NewRecorder()
			f.router.ServeHTTP(resp, req)
			assert.Equal(t, tc.status, resp.Code)
		})
	}
}
