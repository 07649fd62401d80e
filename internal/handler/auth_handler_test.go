package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardia/internal/auth"
	"guardia/internal/handler"
	"guardia/internal/middleware"
	"guardia/internal/model"
	"guardia/internal/repository"
	"guardia/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func setupAuthTest() (*gin.Engine, *mocks.UsuarioRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(mocks.UsuarioRepository)
	tokens := auth.NewTokenManager(testSecret)
	cookie := middleware.SessionCookie{Name: middleware.SessionCookieName}

	authHandler := handler.NewAuthHandler(mockRepo, tokens, cookie, time.Hour, zap.NewNop())
	usuarioHandler := handler.NewUsuarioHandler(mockRepo, zap.NewNop())

	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	staff := r.Group("/", middleware.StaffAuth(tokens, mockRepo, cookie, zap.NewNop()))
	staff.GET("/me", authHandler.Me)
	staff.POST("/usuarios", usuarioHandler.Create)
	return r, mockRepo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return h
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupAuthTest()
	testUser := &model.Usuario{
		ID:           7,
		Email:        "test@example.com",
		PasswordHash: hashed(t, "password123"),
		Nombre:       "Test User",
		Rol:          model.RoleSupervisor,
		Activo:       true,
	}
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(testUser, nil)

	reqBody := handler.LoginRequest{
		Email:    "Test@Example.com",
		Password: "password123",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.AuthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, testUser.Nombre, response.Usuario.Nombre)
	assert.Equal(t, "supervisor", response.Usuario.Rol)
	assert.Contains(t, resp.Header().Get("Set-Cookie"), middleware.SessionCookieName+"="+response.Token)
	assert.Contains(t, resp.Header().Get("Set-Cookie"), "HttpOnly")

	mockRepo.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	router, mockRepo := setupAuthTest()
	testUser := &model.Usuario{
		ID:           7,
		Email:        "test@example.com",
		PasswordHash: hashed(t, "correct_password"),
		Rol:          model.RoleAdmin,
		Activo:       true,
	}
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(testUser, nil)

	reqBody := handler.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong_password",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid credentials", response["error"])

	mockRepo.AssertExpectations(t)
}

func TestLogin_UserNotFound(t *testing.T) {
	router, mockRepo := setupAuthTest()
	mockRepo.On("FindByEmail", mock.Anything, "nonexistent@example.com").Return(nil, nil)

	jsonBody, _ := json.Marshal(handler.LoginRequest{Email: "nonexistent@example.com", Password: "password123"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestLogin_InactiveUser(t *testing.T) {
	router, mockRepo := setupAuthTest()
	mockRepo.On("FindByEmail", mock.Anything, "old@example.com").Return(&model.Usuario{
		ID: 3, Email: "old@example.com", PasswordHash: hashed(t, "password123"), Rol: model.RoleAdmin, Activo: false,
	}, nil)

	jsonBody, _ := json.Marshal(handler.LoginRequest{Email: "old@example.com", Password: "password123"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMe_WithSessionCookie(t *testing.T) {
	router, mockRepo := setupAuthTest()
	token, _ := auth.NewTokenManager(testSecret).GenerateUsuarioToken(9, "operador", time.Hour)
	mockRepo.On("GetByID", mock.Anything, int64(9)).Return(&model.Usuario{ID: 9, Rol: model.RoleOperador, Activo: true}, nil)

	req, _ := http.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Permisos []string `json:"permisos"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"cumplidos", "novedades"}, body.Permisos)
}

func TestLogout_ClearsCookie(t *testing.T) {
	router, _ := setupAuthTest()

	req, _ := http.NewRequest("POST", "/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Set-Cookie"), middleware.SessionCookieName+"=;")
}

func adminRequest(t *testing.T, mockRepo *mocks.UsuarioRepository, body interface{}) *http.Request {
	t.Helper()
	token, _ := auth.NewTokenManager(testSecret).GenerateUsuarioToken(1, "admin", time.Hour)
	mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Usuario{ID: 1, Rol: model.RoleAdmin, Activo: true}, nil)

	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/usuarios", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCreateUsuario_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupAuthTest()
	mockRepo.On("FindByEmail", mock.Anything, "nuevo@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.Usuario) bool {
		return u.Email == "nuevo@example.com" && u.Rol == model.RoleOperador && auth.CheckPassword(u.PasswordHash, "password123")
	})).Return(nil)

	req := adminRequest(t, mockRepo, handler.CreateUsuarioRequest{
		Email: "Nuevo@example.com", Nombre: "Nuevo", Password: "password123", Rol: "operador",
	})

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateUsuario_AlreadyExists(t *testing.T) {
	router, mockRepo := setupAuthTest()
	mockRepo.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.Usuario{ID: 4}, nil)

	req := adminRequest(t, mockRepo, handler.CreateUsuarioRequest{
		Email: "existing@example.com", Nombre: "Test", Password: "password123", Rol: "admin",
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, "User with this email already exists", response["error"])
}

func TestCreateUsuario_RaceOnUniqueEmail(t *testing.T) {
	router, mockRepo := setupAuthTest()
	mockRepo.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	req := adminRequest(t, mockRepo, handler.CreateUsuarioRequest{
		Email: "race@example.com", Nombre: "Race", Password: "password123", Rol: "admin",
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestCreateUsuario_InvalidRole(t *testing.T) {
	router, mockRepo := setupAuthTest()

	req := adminRequest(t, mockRepo, handler.CreateUsuarioRequest{
		Email: "x@example.com", Nombre: "Xx", Password: "password123", Rol: "root",
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
