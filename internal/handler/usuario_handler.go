package handler

import (
	"errors"
	"net/http"
	"strings"

	"guardia/internal/auth"
	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UsuarioHandler struct {
	repo repository.UsuarioRepositoryInterface
	log  *zap.Logger
}

func NewUsuarioHandler(repo repository.UsuarioRepositoryInterface, log *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{repo: repo, log: log}
}

type CreateUsuarioRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nombre   string `json:"nombre" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=8"`
	Rol      string `json:"rol" binding:"required,oneof=admin supervisor operador"`
}

// List godoc
// @Summary List staff users
// @Tags usuarios
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/usuarios [get]
func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list usuarios", err)
		return
	}
	items := make([]UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		items = append(items, toUsuarioResponse(&usuarios[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "usuarios": items})
}

// Create godoc
// @Summary Create a staff user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body CreateUsuarioRequest true "Usuario"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /api/usuarios [post]
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	req.Email = strings.ToLower(req.Email)

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.log, "find usuario", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	usuario := &model.Usuario{
		Email:        req.Email,
		Nombre:       req.Nombre,
		PasswordHash: hash,
		Rol:          model.Role(req.Rol),
		Activo:       true,
	}
	if err := h.repo.Create(c.Request.Context(), usuario); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
			return
		}
		respondError(c, h.log, "create usuario", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "usuario": toUsuarioResponse(usuario)})
}
