package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"guardia/internal/auth"
	"guardia/internal/middleware"
	"guardia/internal/model"
	"guardia/internal/repository"
	"guardia/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VigilanteHandler serves the guard scope. Every route except Login runs
// behind middleware.VigilanteAuth; Login runs behind NegocioFromHeader.
type VigilanteHandler struct {
	colaboradores repository.ColaboradorRepositoryInterface
	cumplidos     repository.CumplidoRepositoryInterface
	puestos       repository.PuestoRepositoryInterface
	tiposNovedad  repository.CatalogRepositoryInterface[model.TipoNovedad]
	novedades     repository.NovedadRepositoryInterface
	store         storage.ObjectStore
	tokens        *auth.TokenManager
	cookie        middleware.SessionCookie
	ttl           time.Duration
	maxUpload     int64
	log           *zap.Logger
}

type VigilanteDeps struct {
	Colaboradores repository.ColaboradorRepositoryInterface
	Cumplidos     repository.CumplidoRepositoryInterface
	Puestos       repository.PuestoRepositoryInterface
	TiposNovedad  repository.CatalogRepositoryInterface[model.TipoNovedad]
	Novedades     repository.NovedadRepositoryInterface
	Store         storage.ObjectStore
	Tokens        *auth.TokenManager
	Cookie        middleware.SessionCookie
	TTL           time.Duration
	MaxUpload     int64
	Log           *zap.Logger
}

func NewVigilanteHandler(d VigilanteDeps) *VigilanteHandler {
	return &VigilanteHandler{
		colaboradores: d.Colaboradores,
		cumplidos:     d.Cumplidos,
		puestos:       d.Puestos,
		tiposNovedad:  d.TiposNovedad,
		novedades:     d.Novedades,
		store:         d.Store,
		tokens:        d.Tokens,
		cookie:        d.Cookie,
		ttl:           d.TTL,
		maxUpload:     d.MaxUpload,
		log:           d.Log,
	}
}

type VigilanteLoginRequest struct {
	Cedula string `json:"cedula" binding:"required,max=20"`
}

type ColaboradorResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Cedula    string `json:"cedula"`
	NegocioID int64  `json:"negocio_id"`
}

func toColaboradorResponse(c *model.Colaborador) ColaboradorResponse {
	return ColaboradorResponse{ID: c.ID, Nombre: c.NombreCompleto(), Cedula: c.Cedula, NegocioID: c.NegocioID}
}

// Login godoc
// @Summary Guard login through the negocio link
// @Tags vigilante
// @Accept json
// @Produce json
// @Param X-Negocio-Hash header string true "Negocio hash"
// @Param request body VigilanteLoginRequest true "Cedula"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/vigilante/login [post]
func (h *VigilanteHandler) Login(c *gin.Context) {
	negocio, ok := middleware.CurrentNegocio(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Negocio not found"})
		return
	}
	var req VigilanteLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	colaborador, err := h.colaboradores.FindByCedula(c.Request.Context(), negocio.ID, strings.TrimSpace(req.Cedula))
	if err != nil {
		respondError(c, h.log, "find colaborador", err)
		return
	}
	if colaborador == nil || !colaborador.Activo {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateVigilanteToken(colaborador.ID, negocio.ID, h.ttl)
	if err != nil {
		h.log.Error("sign vigilante token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	h.cookie.Set(c, token, h.ttl)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"token":       token,
		"colaborador": toColaboradorResponse(colaborador),
		"negocio":     negocio.Nombre,
	})
}

// Me godoc
// @Summary Logged-in guard
// @Tags vigilante
// @Produce json
// @Param X-Negocio-Hash header string true "Negocio hash"
// @Success 200 {object} map[string]interface{}
// @Router /api/vigilante/me [get]
func (h *VigilanteHandler) Me(c *gin.Context) {
	colaborador, _ := middleware.CurrentColaborador(c)
	negocio, _ := middleware.CurrentNegocio(c)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"colaborador": toColaboradorResponse(colaborador),
		"negocio":     negocio.Nombre,
	})
}

// Cumplidos godoc
// @Summary Own assignments of the guard
// @Tags vigilante
// @Produce json
// @Param X-Negocio-Hash header string true "Negocio hash"
// @Param desde query string false "YYYY-MM-DD, defaults to today"
// @Param hasta query string false "YYYY-MM-DD, defaults to desde + 13 days"
// @Success 200 {object} map[string]interface{}
// @Router /api/vigilante/cumplidos [get]
func (h *VigilanteHandler) Cumplidos(c *gin.Context) {
	colaboradorID := c.GetInt64(middleware.ColaboradorIDKey)
	desde, hasta, err := dateRange(c, 14)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	cumplidos, err := h.cumplidos.ListByColaborador(c.Request.Context(), colaboradorID, desde, hasta)
	if err != nil {
		respondError(c, h.log, "list own cumplidos", err)
		return
	}
	items := make([]CumplidoResponse, 0, len(cumplidos))
	for _, cu := range cumplidos {
		items = append(items, toCumplidoResponse(cu))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cumplidos": items})
}

// Puestos godoc
// @Summary Active puestos of the guard's negocio
// @Tags vigilante
// @Produce json
// @Param X-Negocio-Hash header string true "Negocio hash"
// @Success 200 {object} map[string]interface{}
// @Router /api/vigilante/puestos [get]
func (h *VigilanteHandler) Puestos(c *gin.Context) {
	negocio, _ := middleware.CurrentNegocio(c)
	puestos, err := h.puestos.ListByNegocio(c.Request.Context(), negocio.ID)
	if err != nil {
		respondError(c, h.log, "list puestos", err)
		return
	}

	activos := make([]model.Puesto, 0, len(puestos))
	for _, p := range puestos {
		if p.Activo {
			activos = append(activos, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "puestos": activos})
}

// TiposNovedad godoc
// @Summary Novedad types
// @Tags vigilante
// @Produce json
// @Param X-Negocio-Hash header string true "Negocio hash"
// @Success 200 {object} map[string]interface{}
// @Router /api/vigilante/tipos-novedad [get]
func (h *VigilanteHandler) TiposNovedad(c *gin.Context) {
	tipos, err := h.tiposNovedad.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list tipos novedad", err)
		return
	}
	if tipos == nil {
		tipos = []model.TipoNovedad{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tipos": tipos})
}

// CreateNovedad godoc
// @Summary Report a novedad from a puesto
// @Tags vigilante
// @Accept multipart/form-data
// @Produce json
// @Param X-Negocio-Hash header string true "Negocio hash"
// @Param puesto_id formData int true "Puesto ID"
// @Param tipo_novedad_id formData int true "Tipo de novedad"
// @Param descripcion formData string true "Description"
// @Param imagen formData file false "Optional photo"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/vigilante/novedades [post]
func (h *VigilanteHandler) CreateNovedad(c *gin.Context) {
	negocio, _ := middleware.CurrentNegocio(c)
	colaboradorID := c.GetInt64(middleware.ColaboradorIDKey)

	limit := h.maxUpload + 1<<20
	if c.Request.ContentLength > limit {
		badRequest(c, "File too large")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	if err := c.Request.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			badRequest(c, "File too large")
			return
		}
	}

	puestoID, err1 := strconv.ParseInt(c.PostForm("puesto_id"), 10, 64)
	tipoID, err2 := strconv.ParseInt(c.PostForm("tipo_novedad_id"), 10, 64)
	descripcion := strings.TrimSpace(c.PostForm("descripcion"))
	if err1 != nil || err2 != nil || puestoID <= 0 || tipoID <= 0 || descripcion == "" {
		badRequest(c, "puesto_id, tipo_novedad_id and descripcion are required")
		return
	}

	puestoNegocio, err := h.puestos.NegocioID(c.Request.Context(), puestoID)
	if errors.Is(err, repository.ErrPuestoNotFound) || (err == nil && puestoNegocio != negocio.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Puesto not found"})
		return
	}
	if err != nil {
		respondError(c, h.log, "resolve puesto", err)
		return
	}

	exists, err := h.tiposNovedad.Exists(c.Request.Context(), tipoID)
	if err != nil {
		respondError(c, h.log, "check tipo novedad", err)
		return
	}
	if !exists {
		badRequest(c, "Unknown tipo_novedad_id")
		return
	}

	novedad := &model.Novedad{
		NegocioID:     negocio.ID,
		PuestoID:      puestoID,
		ColaboradorID: colaboradorID,
		TipoNovedadID: tipoID,
		Descripcion:   descripcion,
		Estado:        model.EstadoPendiente,
	}

	fh, err := c.FormFile("imagen")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		badRequest(c, "Invalid imagen")
		return
	}
	if fh != nil {
		if fh.Size > h.maxUpload {
			badRequest(c, "File too large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			badRequest(c, "File is unreadable")
			return
		}
		defer f.Close()

		key := fmt.Sprintf("novedades/%d/%s%s", negocio.ID, uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))
		url, err := h.store.Upload(c.Request.Context(), key, fh.Header.Get("Content-Type"), f)
		if err != nil {
			h.log.Error("upload novedad imagen", zap.String("key", key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}
		novedad.ImagenURL = &url
		novedad.ObjectKey = &key
	}

	if err := h.novedades.Create(c.Request.Context(), novedad); err != nil {
		if novedad.ObjectKey != nil {
			storage.DeleteAll(c.Request.Context(), h.store, h.log, []string{*novedad.ObjectKey})
		}
		respondError(c, h.log, "create novedad", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "novedad": novedad})
}
