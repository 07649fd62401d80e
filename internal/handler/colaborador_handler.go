package handler

import (
	"net/http"
	"strconv"
	"strings"

	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ColaboradorHandler struct {
	negocios      repository.NegocioRepositoryInterface
	colaboradores repository.ColaboradorRepositoryInterface
	log           *zap.Logger
}

func NewColaboradorHandler(negocios repository.NegocioRepositoryInterface, colaboradores repository.ColaboradorRepositoryInterface, log *zap.Logger) *ColaboradorHandler {
	return &ColaboradorHandler{negocios: negocios, colaboradores: colaboradores, log: log}
}

type ColaboradorRequest struct {
	Nombres   string `json:"nombres" binding:"required,max=100"`
	Apellidos string `json:"apellidos" binding:"required,max=100"`
	Cedula    string `json:"cedula" binding:"required,cedula"`
	Telefono  string `json:"telefono" binding:"omitempty,max=30"`
	Activo    *bool  `json:"activo"`
}

func (r ColaboradorRequest) apply(c *model.Colaborador) {
	c.Nombres = strings.TrimSpace(r.Nombres)
	c.Apellidos = strings.TrimSpace(r.Apellidos)
	c.Cedula = r.Cedula
	c.Telefono = strings.TrimSpace(r.Telefono)
	if r.Activo != nil {
		c.Activo = *r.Activo
	}
}

// List godoc
// @Summary List the colaboradores of a negocio
// @Tags configuracion
// @Produce json
// @Param id path int true "Negocio ID"
// @Param activo query bool false "Filter by active flag"
// @Success 200 {object} map[string]interface{}
// @Router /api/negocios/{id}/colaboradores [get]
func (h *ColaboradorHandler) List(c *gin.Context) {
	negocioID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var activo *bool
	if raw := c.Query("activo"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "Invalid activo")
			return
		}
		activo = &v
	}

	colaboradores, err := h.colaboradores.ListByNegocio(c.Request.Context(), negocioID, activo)
	if err != nil {
		respondError(c, h.log, "list colaboradores", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "colaboradores": colaboradores})
}

// Create godoc
// @Summary Create a colaborador
// @Tags configuracion
// @Accept json
// @Produce json
// @Param id path int true "Negocio ID"
// @Param request body ColaboradorRequest true "Colaborador"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /api/negocios/{id}/colaboradores [post]
func (h *ColaboradorHandler) Create(c *gin.Context) {
	negocioID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ColaboradorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	if _, err := h.negocios.GetByID(c.Request.Context(), negocioID); err != nil {
		respondError(c, h.log, "get negocio", err)
		return
	}

	colaborador := &model.Colaborador{NegocioID: negocioID, Activo: true}
	req.apply(colaborador)
	if err := h.colaboradores.Create(c.Request.Context(), colaborador); err != nil {
		respondError(c, h.log, "create colaborador", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "colaborador": colaborador})
}

// Update godoc
// @Summary Update a colaborador
// @Tags configuracion
// @Accept json
// @Produce json
// @Param id path int true "Colaborador ID"
// @Param request body ColaboradorRequest true "Colaborador"
// @Success 200 {object} map[string]interface{}
// @Router /api/colaboradores/{id} [put]
func (h *ColaboradorHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ColaboradorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	colaborador, err := h.colaboradores.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "get colaborador", err)
		return
	}
	req.apply(colaborador)
	if err := h.colaboradores.Update(c.Request.Context(), colaborador); err != nil {
		respondError(c, h.log, "update colaborador", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "colaborador": colaborador})
}
