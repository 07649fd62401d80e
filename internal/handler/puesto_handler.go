package handler

import (
	"net/http"
	"strings"

	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PuestoHandler serves unidades de negocio and their puestos.
type PuestoHandler struct {
	negocios repository.NegocioRepositoryInterface
	unidades repository.UnidadRepositoryInterface
	puestos  repository.PuestoRepositoryInterface
	log      *zap.Logger
}

func NewPuestoHandler(
	negocios repository.NegocioRepositoryInterface,
	unidades repository.UnidadRepositoryInterface,
	puestos repository.PuestoRepositoryInterface,
	log *zap.Logger,
) *PuestoHandler {
	return &PuestoHandler{negocios: negocios, unidades: unidades, puestos: puestos, log: log}
}

type UnidadRequest struct {
	Nombre string `json:"nombre" binding:"required,max=150"`
	Activo *bool  `json:"activo"`
}

type PuestoRequest struct {
	UnidadNegocioID int64  `json:"unidad_negocio_id" binding:"required,min=1"`
	Nombre          string `json:"nombre" binding:"required,max=150"`
	Direccion       string `json:"direccion" binding:"max=255"`
	Activo          *bool  `json:"activo"`
}

// ListUnidades godoc
// @Summary List the unidades of a negocio
// @Tags configuracion
// @Produce json
// @Param id path int true "Negocio ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/negocios/{id}/unidades [get]
func (h *PuestoHandler) ListUnidades(c *gin.Context) {
	negocioID, ok := idParam(c, "id")
	if !ok {
		return
	}
	unidades, err := h.unidades.ListByNegocio(c.Request.Context(), negocioID)
	if err != nil {
		respondError(c, h.log, "list unidades", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "unidades": unidades})
}

// CreateUnidad godoc
// @Summary Create a unidad de negocio
// @Tags configuracion
// @Accept json
// @Produce json
// @Param id path int true "Negocio ID"
// @Param request body UnidadRequest true "Unidad"
// @Success 201 {object} map[string]interface{}
// @Router /api/negocios/{id}/unidades [post]
func (h *PuestoHandler) CreateUnidad(c *gin.Context) {
	negocioID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UnidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	if _, err := h.negocios.GetByID(c.Request.Context(), negocioID); err != nil {
		respondError(c, h.log, "get negocio", err)
		return
	}

	unidad := &model.UnidadNegocio{NegocioID: negocioID, Nombre: strings.TrimSpace(req.Nombre), Activo: true}
	if req.Activo != nil {
		unidad.Activo = *req.Activo
	}
	if err := h.unidades.Create(c.Request.Context(), unidad); err != nil {
		respondError(c, h.log, "create unidad", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "unidad": unidad})
}

// UpdateUnidad godoc
// @Summary Update a unidad de negocio
// @Tags configuracion
// @Accept json
// @Produce json
// @Param id path int true "Unidad ID"
// @Param request body UnidadRequest true "Unidad"
// @Success 200 {object} map[string]interface{}
// @Router /api/unidades/{id} [put]
func (h *PuestoHandler) UpdateUnidad(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UnidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	unidad, err := h.unidades.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "get unidad", err)
		return
	}
	unidad.Nombre = strings.TrimSpace(req.Nombre)
	if req.Activo != nil {
		unidad.Activo = *req.Activo
	}
	if err := h.unidades.Update(c.Request.Context(), unidad); err != nil {
		respondError(c, h.log, "update unidad", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "unidad": unidad})
}

// ListPuestos godoc
// @Summary List puestos by unidad or negocio
// @Tags configuracion
// @Produce json
// @Param unidad_id query int false "Unidad ID"
// @Param negocio_id query int false "Negocio ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/puestos [get]
func (h *PuestoHandler) ListPuestos(c *gin.Context) {
	unidadID, err := queryID(c, "unidad_id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	negocioID, err := queryID(c, "negocio_id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var puestos []model.Puesto
	switch {
	case unidadID != nil:
		puestos, err = h.puestos.ListByUnidad(c.Request.Context(), *unidadID)
	case negocioID != nil:
		puestos, err = h.puestos.ListByNegocio(c.Request.Context(), *negocioID)
	default:
		badRequest(c, "unidad_id or negocio_id is required")
		return
	}
	if err != nil {
		respondError(c, h.log, "list puestos", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "puestos": puestos})
}

// CreatePuesto godoc
// @Summary Create a puesto
// @Tags configuracion
// @Accept json
// @Produce json
// @Param request body PuestoRequest true "Puesto"
// @Success 201 {object} map[string]interface{}
// @Router /api/puestos [post]
func (h *PuestoHandler) CreatePuesto(c *gin.Context) {
	var req PuestoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	if _, err := h.unidades.GetByID(c.Request.Context(), req.UnidadNegocioID); err != nil {
		respondError(c, h.log, "get unidad", err)
		return
	}

	puesto := &model.Puesto{
		UnidadNegocioID: req.UnidadNegocioID,
		Nombre:          strings.TrimSpace(req.Nombre),
		Direccion:       strings.TrimSpace(req.Direccion),
		Activo:          true,
	}
	if req.Activo != nil {
		puesto.Activo = *req.Activo
	}
	if err := h.puestos.Create(c.Request.Context(), puesto); err != nil {
		respondError(c, h.log, "create puesto", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "puesto": puesto})
}

// UpdatePuesto godoc
// @Summary Update a puesto
// @Tags configuracion
// @Accept json
// @Produce json
// @Param id path int true "Puesto ID"
// @Param request body PuestoRequest true "Puesto"
// @Success 200 {object} map[string]interface{}
// @Router /api/puestos/{id} [put]
func (h *PuestoHandler) UpdatePuesto(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req PuestoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	puesto, err := h.puestos.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "get puesto", err)
		return
	}
	puesto.Nombre = strings.TrimSpace(req.Nombre)
	puesto.Direccion = strings.TrimSpace(req.Direccion)
	if req.Activo != nil {
		puesto.Activo = *req.Activo
	}
	if err := h.puestos.Update(c.Request.Context(), puesto); err != nil {
		respondError(c, h.log, "update puesto", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "puesto": puesto})
}
