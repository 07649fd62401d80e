package handler

import (
	"net/http"

	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NovedadHandler is the staff side of incident reports.
type NovedadHandler struct {
	repo repository.NovedadRepositoryInterface
	log  *zap.Logger
}

func NewNovedadHandler(repo repository.NovedadRepositoryInterface, log *zap.Logger) *NovedadHandler {
	return &NovedadHandler{repo: repo, log: log}
}

type EstadoRequest struct {
	Estado string `json:"estado" binding:"required,oneof=pendiente revisada cerrada"`
}

// List godoc
// @Summary List novedades of a negocio
// @Tags novedades
// @Produce json
// @Param negocio_id query int true "Negocio ID"
// @Param estado query string false "pendiente, revisada or cerrada"
// @Success 200 {object} map[string]interface{}
// @Router /api/novedades [get]
func (h *NovedadHandler) List(c *gin.Context) {
	negocioID, err := queryID(c, "negocio_id")
	if err != nil || negocioID == nil {
		badRequest(c, "negocio_id is required")
		return
	}
	estado := c.Query("estado")
	if estado != "" && !model.ValidEstado(estado) {
		badRequest(c, "Invalid estado")
		return
	}

	novedades, err := h.repo.List(c.Request.Context(), *negocioID, estado)
	if err != nil {
		respondError(c, h.log, "list novedades", err)
		return
	}
	if novedades == nil {
		novedades = []model.Novedad{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "novedades": novedades})
}

// UpdateEstado godoc
// @Summary Change the estado of a novedad
// @Tags novedades
// @Accept json
// @Produce json
// @Param id path int true "Novedad ID"
// @Param request body EstadoRequest true "Estado"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/novedades/{id} [patch]
func (h *NovedadHandler) UpdateEstado(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req EstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid estado")
		return
	}
	if err := h.repo.UpdateEstado(c.Request.Context(), id, req.Estado); err != nil {
		respondError(c, h.log, "update novedad", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "estado": req.Estado})
}
