package handler

import (
	"net/http"
	"strings"

	"guardia/internal/model"
	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AusenciaHandler struct {
	ausencias     repository.AusenciaRepositoryInterface
	colaboradores repository.ColaboradorRepositoryInterface
	tipos         repository.CatalogRepositoryInterface[model.TipoAusencia]
	log           *zap.Logger
}

func NewAusenciaHandler(
	ausencias repository.AusenciaRepositoryInterface,
	colaboradores repository.ColaboradorRepositoryInterface,
	tipos repository.CatalogRepositoryInterface[model.TipoAusencia],
	log *zap.Logger,
) *AusenciaHandler {
	return &AusenciaHandler{ausencias: ausencias, colaboradores: colaboradores, tipos: tipos, log: log}
}

type AusenciaRequest struct {
	ColaboradorID  int64  `json:"colaborador_id" binding:"required,min=1"`
	TipoAusenciaID int64  `json:"tipo_ausencia_id" binding:"required,min=1"`
	FechaInicio    string `json:"fecha_inicio" binding:"required"`
	FechaFin       string `json:"fecha_fin" binding:"required"`
	Descripcion    string `json:"descripcion" binding:"max=500"`
}

type AusenciaResponse struct {
	ID             int64  `json:"id"`
	ColaboradorID  int64  `json:"colaborador_id"`
	TipoAusenciaID int64  `json:"tipo_ausencia_id"`
	FechaInicio    string `json:"fecha_inicio"`
	FechaFin       string `json:"fecha_fin"`
	Descripcion    string `json:"descripcion"`
}

func toAusenciaResponse(a model.Ausencia) AusenciaResponse {
	return AusenciaResponse{
		ID:             a.ID,
		ColaboradorID:  a.ColaboradorID,
		TipoAusenciaID: a.TipoAusenciaID,
		FechaInicio:    formatFecha(a.FechaInicio),
		FechaFin:       formatFecha(a.FechaFin),
		Descripcion:    a.Descripcion,
	}
}

// List godoc
// @Summary List absences
// @Tags ausencias
// @Produce json
// @Param colaborador_id query int false "Colaborador ID"
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Success 200 {object} map[string]interface{}
// @Router /api/ausencias [get]
func (h *AusenciaHandler) List(c *gin.Context) {
	var f repository.AusenciaFilter
	var err error
	if f.ColaboradorID, err = queryID(c, "colaborador_id"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if f.Desde, err = queryFecha(c, "desde"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if f.Hasta, err = queryFecha(c, "hasta"); err != nil {
		badRequest(c, err.Error())
		return
	}

	ausencias, err := h.ausencias.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, "list ausencias", err)
		return
	}
	items := make([]AusenciaResponse, 0, len(ausencias))
	for _, a := range ausencias {
		items = append(items, toAusenciaResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ausencias": items})
}

// Create godoc
// @Summary Register an absence
// @Tags ausencias
// @Accept json
// @Produce json
// @Param request body AusenciaRequest true "Ausencia"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /api/ausencias [post]
func (h *AusenciaHandler) Create(c *gin.Context) {
	var req AusenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	inicio, err := parseFecha(req.FechaInicio)
	if err != nil {
		badRequest(c, "Invalid fecha_inicio, expected YYYY-MM-DD")
		return
	}
	fin, err := parseFecha(req.FechaFin)
	if err != nil {
		badRequest(c, "Invalid fecha_fin, expected YYYY-MM-DD")
		return
	}
	if fin.Before(inicio) {
		badRequest(c, "fecha_fin must not be before fecha_inicio")
		return
	}

	if _, err := h.colaboradores.GetByID(c.Request.Context(), req.ColaboradorID); err != nil {
		respondError(c, h.log, "get colaborador", err)
		return
	}
	exists, err := h.tipos.Exists(c.Request.Context(), req.TipoAusenciaID)
	if err != nil {
		respondError(c, h.log, "check tipo ausencia", err)
		return
	}
	if !exists {
		badRequest(c, "Unknown tipo_ausencia_id")
		return
	}

	ausencia := &model.Ausencia{
		ColaboradorID:  req.ColaboradorID,
		TipoAusenciaID: req.TipoAusenciaID,
		FechaInicio:    inicio,
		FechaFin:       fin,
		Descripcion:    strings.TrimSpace(req.Descripcion),
	}
	if err := h.ausencias.Create(c.Request.Context(), ausencia); err != nil {
		respondError(c, h.log, "create ausencia", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "ausencia": toAusenciaResponse(*ausencia)})
}

// Delete godoc
// @Summary Delete an absence
// @Tags ausencias
// @Param id path int true "Ausencia ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/ausencias/{id} [delete]
func (h *AusenciaHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.ausencias.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, "delete ausencia", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
