package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"guardia/internal/model"
	"guardia/internal/repository"
	"guardia/internal/storage"
	"guardia/internal/watermark"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CumplidoHandler struct {
	cumplidos     repository.CumplidoRepositoryInterface
	colaboradores repository.ColaboradorRepositoryInterface
	puestos       repository.PuestoRepositoryInterface
	ausencias     repository.AusenciaRepositoryInterface
	store         storage.ObjectStore
	stamper       watermark.Stamper
	maxUpload     int64
	log           *zap.Logger
}

// CumplidoDeps groups the collaborators of CumplidoHandler.
type CumplidoDeps struct {
	Cumplidos     repository.CumplidoRepositoryInterface
	Colaboradores repository.ColaboradorRepositoryInterface
	Puestos       repository.PuestoRepositoryInterface
	Ausencias     repository.AusenciaRepositoryInterface
	Store         storage.ObjectStore
	Stamper       watermark.Stamper
	MaxUpload     int64
	Log           *zap.Logger
}

func NewCumplidoHandler(d CumplidoDeps) *CumplidoHandler {
	return &CumplidoHandler{
		cumplidos:     d.Cumplidos,
		colaboradores: d.Colaboradores,
		puestos:       d.Puestos,
		ausencias:     d.Ausencias,
		store:         d.Store,
		stamper:       d.Stamper,
		maxUpload:     d.MaxUpload,
		log:           d.Log,
	}
}

// AssignRequest is one assignment upsert. An absent, null or empty
// colaborador_id clears the slot.
type AssignRequest struct {
	PuestoID      FlexID `json:"puesto_id"`
	Fecha         string `json:"fecha"`
	TipoTurnoID   FlexID `json:"tipo_turno_id"`
	ColaboradorID FlexID `json:"colaborador_id"`
}

type ImportRequest struct {
	Items []AssignRequest `json:"items" binding:"required,min=1"`
}

type NotaRequest struct {
	Nota string `json:"nota"`
}

type CumplidoResponse struct {
	ID            int64   `json:"id"`
	PuestoID      int64   `json:"puesto_id"`
	Fecha         string  `json:"fecha"`
	TipoTurnoID   int64   `json:"tipo_turno_id"`
	ColaboradorID *int64  `json:"colaborador_id"`
	Nota          *string `json:"nota"`
}

type ArchivoResponse struct {
	ID             int64  `json:"id"`
	CumplidoID     int64  `json:"cumplido_id"`
	TipoArchivoID  int    `json:"tipo_archivo_id"`
	URL            string `json:"url"`
	NombreOriginal string `json:"nombre_original"`
	MimeType       string `json:"mime_type"`
	Tamano         int64  `json:"tamano"`
	CreatedAt      string `json:"created_at"`
}

func toCumplidoResponse(c model.Cumplido) CumplidoResponse {
	resp := CumplidoResponse{
		ID:            c.ID,
		PuestoID:      c.PuestoID,
		Fecha:         formatFecha(c.Fecha),
		TipoTurnoID:   c.TipoTurnoID,
		ColaboradorID: c.ColaboradorID,
	}
	if c.Nota != nil {
		nota := c.Nota.Nota
		resp.Nota = &nota
	}
	return resp
}

func toArchivoResponse(a *model.ArchivoCumplido) ArchivoResponse {
	return ArchivoResponse{
		ID:             a.ID,
		CumplidoID:     a.CumplidoID,
		TipoArchivoID:  a.TipoArchivoID,
		URL:            a.URL,
		NombreOriginal: a.NombreOriginal,
		MimeType:       a.MimeType,
		Tamano:         a.Tamano,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// List godoc
// @Summary List cumplidos of a negocio in a date range
// @Tags cumplidos
// @Produce json
// @Param negocio_id query int true "Negocio ID"
// @Param desde query string false "YYYY-MM-DD, defaults to today"
// @Param hasta query string false "YYYY-MM-DD, defaults to desde + 6 days"
// @Success 200 {object} map[string]interface{}
// @Router /api/cumplidos [get]
func (h *CumplidoHandler) List(c *gin.Context) {
	negocioID, err := queryID(c, "negocio_id")
	if err != nil || negocioID == nil {
		badRequest(c, "negocio_id is required")
		return
	}
	desde, hasta, err := dateRange(c, 7)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	cumplidos, err := h.cumplidos.ListByNegocio(c.Request.Context(), *negocioID, desde, hasta)
	if err != nil {
		respondError(c, h.log, "list cumplidos", err)
		return
	}

	items := make([]CumplidoResponse, 0, len(cumplidos))
	for _, cu := range cumplidos {
		items = append(items, toCumplidoResponse(cu))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cumplidos": items})
}

// validate turns a request into an Assignment, checking required fields, the
// date and, for a non-null colaborador, that it is active, belongs to the
// puesto's negocio and is not absent.
func (h *CumplidoHandler) validate(c *gin.Context, req AssignRequest) (model.Assignment, string, error) {
	if !req.PuestoID.Valid || !req.TipoTurnoID.Valid || strings.TrimSpace(req.Fecha) == "" {
		return model.Assignment{}, "puesto_id, fecha and tipo_turno_id are required", nil
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return model.Assignment{}, "Invalid date, expected YYYY-MM-DD", nil
	}

	in := model.Assignment{
		PuestoID:      req.PuestoID.Value,
		Fecha:         fecha,
		TipoTurnoID:   req.TipoTurnoID.Value,
		ColaboradorID: req.ColaboradorID.Ptr(),
	}
	if in.ColaboradorID == nil {
		return in, "", nil
	}

	colaborador, err := h.colaboradores.GetByID(c.Request.Context(), *in.ColaboradorID)
	if errors.Is(err, repository.ErrColaboradorNotFound) {
		return in, "Colaborador not found", nil
	}
	if err != nil {
		return in, "", err
	}
	if !colaborador.Activo {
		return in, "Colaborador is inactive", nil
	}

	negocioID, err := h.puestos.NegocioID(c.Request.Context(), in.PuestoID)
	if errors.Is(err, repository.ErrPuestoNotFound) {
		return in, "Puesto not found", nil
	}
	if err != nil {
		return in, "", err
	}
	if negocioID != colaborador.NegocioID {
		return in, "Colaborador belongs to another negocio", nil
	}

	ausencia, err := h.ausencias.Covering(c.Request.Context(), colaborador.ID, fecha)
	if err != nil {
		return in, "", err
	}
	if ausencia != nil {
		return in, "Colaborador has an absence on that date", nil
	}
	return in, "", nil
}

// Assign godoc
// @Summary Assign, reassign or clear a colaborador on a puesto shift
// @Tags cumplidos
// @Accept json
// @Produce json
// @Param request body AssignRequest true "Assignment"
// @Success 200 {object} map[string]interface{}
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/cumplidos [post]
func (h *CumplidoHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	in, problem, err := h.validate(c, req)
	if err != nil {
		respondError(c, h.log, "validate assignment", err)
		return
	}
	if problem != "" {
		badRequest(c, problem)
		return
	}

	res, err := h.cumplidos.Assign(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, "assign cumplido", err)
		return
	}
	storage.DeleteAll(c.Request.Context(), h.store, h.log, res.OrphanedKeys)

	switch res.Action {
	case model.AssignCreated:
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": res.CumplidoID})
	case model.AssignUpdated:
		c.JSON(http.StatusOK, gin.H{"success": true, "id": res.CumplidoID, "updated": true})
	case model.AssignRemoved:
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": true, "message": "Cumplido removed"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"id":      res.CumplidoID,
			"kept":    true,
			"message": "Colaborador removed, record kept because it has a note",
		})
	}
}

// Import godoc
// @Summary Apply many assignments atomically
// @Tags cumplidos
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Assignments"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/cumplidos/import [post]
func (h *CumplidoHandler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	items := make([]model.Assignment, 0, len(req.Items))
	for i, item := range req.Items {
		in, problem, err := h.validate(c, item)
		if err != nil {
			respondError(c, h.log, "validate import", err)
			return
		}
		if problem != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": problem, "index": i})
			return
		}
		items = append(items, in)
	}

	results, err := h.cumplidos.AssignMany(c.Request.Context(), items)
	if err != nil {
		respondError(c, h.log, "import cumplidos", err)
		return
	}

	counts := map[model.AssignAction]int{}
	var orphaned []string
	for _, r := range results {
		counts[r.Action]++
		orphaned = append(orphaned, r.OrphanedKeys...)
	}
	storage.DeleteAll(c.Request.Context(), h.store, h.log, orphaned)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"created": counts[model.AssignCreated],
		"updated": counts[model.AssignUpdated],
		"removed": counts[model.AssignRemoved],
		"kept":    counts[model.AssignKept],
	})
}

// GetNota godoc
// @Summary Get the note of a cumplido
// @Tags cumplidos
// @Produce json
// @Param id path int true "Cumplido ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/cumplidos/{id}/nota [get]
func (h *CumplidoHandler) GetNota(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.cumplidos.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, h.log, "get cumplido", err)
		return
	}

	nota, err := h.cumplidos.GetNota(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "get nota", err)
		return
	}
	if nota == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "nota": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "nota": nota.Nota})
}

// SaveNota godoc
// @Summary Create, update or delete (empty text) the note of a cumplido
// @Tags cumplidos
// @Accept json
// @Produce json
// @Param id path int true "Cumplido ID"
// @Param request body NotaRequest true "Note"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/cumplidos/{id}/nota [put]
func (h *CumplidoHandler) SaveNota(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req NotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	res, err := h.cumplidos.SaveNota(c.Request.Context(), id, strings.TrimSpace(req.Nota))
	if err != nil {
		respondError(c, h.log, "save nota", err)
		return
	}
	storage.DeleteAll(c.Request.Context(), h.store, h.log, res.OrphanedKeys)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"action":           res.Action,
		"cumplido_deleted": res.CumplidoDeleted,
	})
}

// UploadArchivo godoc
// @Summary Upload a file for a cumplido
// @Description Identity photos (tipo_archivo_id=1) are watermarked when the service is configured.
// A new upload replaces previous files of the same type.
// @Tags cumplidos
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Cumplido ID"
// @Param file formData file true "File"
// @Param tipo_archivo_id formData int false "File type, defaults to 1"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/cumplidos/{id}/archivos [post]
func (h *CumplidoHandler) UploadArchivo(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			badRequest(c, "File too large")
			return
		}
		badRequest(c, "File is required")
		return
	}
	if fh.Size > h.maxUpload {
		badRequest(c, "File too large")
		return
	}

	tipo := model.TipoArchivoIdentidad
	if raw := c.PostForm("tipo_archivo_id"); raw != "" {
		tipo, err = strconv.Atoi(raw)
		if err != nil || tipo <= 0 {
			badRequest(c, "Invalid tipo_archivo_id")
			return
		}
	}

	if _, err := h.cumplidos.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, h.log, "get cumplido", err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		badRequest(c, "File is unreadable")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		badRequest(c, "File is unreadable")
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if tipo == model.TipoArchivoIdentidad {
		data = h.stamp(c, contentType, data)
	}

	key := fmt.Sprintf("cumplidos/%d/tipo-%d/%s%s", id, tipo, uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))
	url, err := h.store.Upload(c.Request.Context(), key, contentType, bytes.NewReader(data))
	if err != nil {
		h.log.Error("upload archivo", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	archivo := &model.ArchivoCumplido{
		CumplidoID:     id,
		TipoArchivoID:  tipo,
		URL:            url,
		ObjectKey:      key,
		NombreOriginal: fh.Filename,
		MimeType:       contentType,
		Tamano:         int64(len(data)),
	}
	replaced, err := h.cumplidos.ReplaceArchivo(c.Request.Context(), archivo)
	if err != nil {
		storage.DeleteAll(c.Request.Context(), h.store, h.log, []string{key})
		respondError(c, h.log, "save archivo", err)
		return
	}
	storage.DeleteAll(c.Request.Context(), h.store, h.log, replaced)

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": archivo.ID, "url": url})
}

// stamp watermarks an identity photo. Failures fall back to the original
// bytes.
func (h *CumplidoHandler) stamp(c *gin.Context, contentType string, data []byte) []byte {
	stamped, err := h.stamper.Stamp(c.Request.Context(), contentType, data)
	if err != nil {
		h.log.Warn("watermark failed, storing original", zap.Error(err))
		return data
	}
	return stamped
}

// LatestArchivo godoc
// @Summary Most recent file of a type for a cumplido
// @Tags cumplidos
// @Produce json
// @Param id path int true "Cumplido ID"
// @Param tipo path int true "File type"
// @Success 200 {object} map[string]interface{}
// @Router /api/cumplidos/{id}/archivos/{tipo} [get]
func (h *CumplidoHandler) LatestArchivo(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	tipo, ok := idParam(c, "tipo")
	if !ok {
		return
	}

	archivo, err := h.cumplidos.LatestArchivo(c.Request.Context(), id, int(tipo))
	if err != nil {
		respondError(c, h.log, "latest archivo", err)
		return
	}
	if archivo == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "archivo": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "archivo": toArchivoResponse(archivo)})
}

// DeleteArchivos godoc
// @Summary Delete every file of a cumplido
// @Description Storage deletes are best effort; failures are counted, not fatal.
// @Tags cumplidos
// @Produce json
// @Param id path int true "Cumplido ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/cumplidos/{id}/archivos [delete]
func (h *CumplidoHandler) DeleteArchivos(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	archivos, err := h.cumplidos.ListArchivos(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "list archivos", err)
		return
	}
	keys := make([]string, 0, len(archivos))
	for _, a := range archivos {
		keys = append(keys, a.ObjectKey)
	}
	deleted, failed := storage.DeleteAll(c.Request.Context(), h.store, h.log, keys)

	rows, err := h.cumplidos.DeleteArchivos(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "delete archivos", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"found":           len(archivos),
		"storage_deleted": deleted,
		"storage_failed":  failed,
		"rows_deleted":    rows,
	})
}
