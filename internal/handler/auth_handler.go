package handler

import (
	"net/http"
	"strings"
	"time"

	"guardia/internal/auth"
	"guardia/internal/middleware"
	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usuarios repository.UsuarioRepositoryInterface
	tokens   *auth.TokenManager
	cookie   middleware.SessionCookie
	ttl      time.Duration
	log      *zap.Logger
}

func NewAuthHandler(usuarios repository.UsuarioRepositoryInterface, tokens *auth.TokenManager, cookie middleware.SessionCookie, ttl time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{usuarios: usuarios, tokens: tokens, cookie: cookie, ttl: ttl, log: log}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UsuarioResponse struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}

type AuthResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

func toUsuarioResponse(u *model.Usuario) UsuarioResponse {
	return UsuarioResponse{ID: u.ID, Email: u.Email, Nombre: u.Nombre, Rol: string(u.Rol), Activo: u.Activo}
}

// Login godoc
// @Summary Staff login
// @Description Sets the session cookie and also returns the token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	usuario, err := h.usuarios.FindByEmail(c.Request.Context(), strings.ToLower(req.Email))
	if err != nil {
		h.log.Error("find usuario", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if usuario == nil || !usuario.Activo || !auth.CheckPassword(usuario.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateUsuarioToken(usuario.ID, string(usuario.Rol), h.ttl)
	if err != nil {
		h.log.Error("sign staff token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	h.cookie.Set(c, token, h.ttl)

	c.JSON(http.StatusOK, AuthResponse{Success: true, Token: token, Usuario: toUsuarioResponse(usuario)})
}

// Logout godoc
// @Summary Clear the staff session cookie
// @Tags auth
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me godoc
// @Summary Current staff user and permissions
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	usuario, ok := middleware.CurrentUsuario(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	perms := make([]model.Permission, 0)
	for _, p := range model.AllPermissions {
		if usuario.Rol.Can(p) {
			perms = append(perms, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "usuario": toUsuarioResponse(usuario), "permisos": perms})
}
