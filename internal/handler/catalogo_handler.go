package handler

import (
	"net/http"

	"guardia/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler lists and creates the rows of one catalog table (tipos de
// turno, ausencia or novedad). Validation comes from the model's binding tags.
type CatalogHandler[T repository.Catalog] struct {
	repo repository.CatalogRepositoryInterface[T]
	key  string
	log  *zap.Logger
}

// NewCatalogHandler builds a handler whose responses carry the rows under key.
func NewCatalogHandler[T repository.Catalog](repo repository.CatalogRepositoryInterface[T], key string, log *zap.Logger) *CatalogHandler[T] {
	return &CatalogHandler[T]{repo: repo, key: key, log: log}
}

// List godoc
// @Summary List a catalog
// @Tags catalogos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/tipos-turno [get]
// @Router /api/tipos-ausencia [get]
// @Router /api/tipos-novedad [get]
func (h *CatalogHandler[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list "+h.key, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, h.key: items})
}

// Create godoc
// @Summary Add a catalog entry
// @Tags catalogos
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /api/tipos-turno [post]
// @Router /api/tipos-ausencia [post]
// @Router /api/tipos-novedad [post]
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	if err := h.repo.Create(c.Request.Context(), &item); err != nil {
		respondError(c, h.log, "create "+h.key, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}
