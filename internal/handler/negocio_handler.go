package handler

import (
	"errors"
	"net/http"
	"strings"

	"guardia/internal/hashid"
	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NegocioHandler struct {
	repo    repository.NegocioRepositoryInterface
	codec   *hashid.Codec
	baseURL string
	log     *zap.Logger
}

func NewNegocioHandler(repo repository.NegocioRepositoryInterface, codec *hashid.Codec, baseURL string, log *zap.Logger) *NegocioHandler {
	return &NegocioHandler{repo: repo, codec: codec, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

type NegocioRequest struct {
	Nombre string `json:"nombre" binding:"required,min=2,max=150"`
	Activo *bool  `json:"activo"`
}

// List godoc
// @Summary List negocios
// @Tags configuracion
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/negocios [get]
func (h *NegocioHandler) List(c *gin.Context) {
	negocios, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list negocios", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "negocios": negocios})
}

// Create godoc
// @Summary Create a negocio
// @Tags configuracion
// @Accept json
// @Produce json
// @Param request body NegocioRequest true "Negocio"
// @Success 201 {object} map[string]interface{}
// @Router /api/negocios [post]
func (h *NegocioHandler) Create(c *gin.Context) {
	var req NegocioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	negocio := &model.Negocio{Nombre: strings.TrimSpace(req.Nombre), Activo: true}
	if req.Activo != nil {
		negocio.Activo = *req.Activo
	}
	if err := h.repo.Create(c.Request.Context(), negocio); err != nil {
		respondError(c, h.log, "create negocio", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "negocio": negocio})
}

// Update godoc
// @Summary Update a negocio
// @Tags configuracion
// @Accept json
// @Produce json
// @Param id path int true "Negocio ID"
// @Param request body NegocioRequest true "Negocio"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/negocios/{id} [put]
func (h *NegocioHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req NegocioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	negocio, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "get negocio", err)
		return
	}
	negocio.Nombre = strings.TrimSpace(req.Nombre)
	if req.Activo != nil {
		negocio.Activo = *req.Activo
	}
	if err := h.repo.Update(c.Request.Context(), negocio); err != nil {
		respondError(c, h.log, "update negocio", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "negocio": negocio})
}

// Enlace godoc
// @Summary Guard login link of a negocio
// @Description The hash is an obfuscated id, not a secret.
// @Tags configuracion
// @Produce json
// @Param id path int true "Negocio ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/negocios/{id}/enlace [get]
func (h *NegocioHandler) Enlace(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, h.log, "get negocio", err)
		return
	}

	hash, err := h.codec.Encode(id)
	if err != nil {
		respondError(c, h.log, "encode negocio hash", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hash": hash, "url": h.baseURL + "/vigilante/" + hash})
}

// Publico godoc
// @Summary Negocio name for the guard login page
// @Tags publico
// @Produce json
// @Param hash path string true "Negocio hash"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/publico/negocios/{hash} [get]
func (h *NegocioHandler) Publico(c *gin.Context) {
	id, err := h.codec.Decode(c.Param("hash"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Negocio not found"})
		return
	}

	negocio, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNegocioNotFound) || (err == nil && !negocio.Activo) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Negocio not found"})
		return
	}
	if err != nil {
		respondError(c, h.log, "get negocio", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "nombre": negocio.Nombre})
}
