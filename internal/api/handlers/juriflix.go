package handlers

import (
	"net/http"

	apperrors "direito-hub-backend/internal/errors"
	"direito-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JuriflixHandler handles HTTP requests for catalog-title enrichment
type JuriflixHandler struct {
	juriflixService service.JuriflixServiceInterface
}

// NewJuriflixHandler creates a new catalog-enrichment handler
func NewJuriflixHandler(juriflixService service.JuriflixServiceInterface) *JuriflixHandler {
	return &JuriflixHandler{juriflixService: juriflixService}
}

// EnriquecerTitulo handles POST /api/enriquecer-titulo
// @Summary Enrich a catalog title
// @Description Enrich a catalog item with movie metadata, cached for 30 days; force bypasses the cache
// @Tags juriflix
// @Accept json
// @Produce json
// @Param request body service.EnriquecerTituloRequest true "Title to enrich"
// @Success 200 {object} service.EnriquecerTituloResponse "Enrichment result; success=false on a metadata miss"
// @Failure 400 {object} map[string]interface{} "juriflix_id is required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/enriquecer-titulo [post]
func (h *JuriflixHandler) EnriquecerTitulo(c *gin.Context) {
	var req service.EnriquecerTituloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidJSON.Error()})
		return
	}

	resp, err := h.juriflixService.EnriquecerTitulo(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
