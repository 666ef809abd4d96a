package handlers

import (
	"net/http"

	apperrors "direito-hub-backend/internal/errors"
	"direito-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VagasHandler handles HTTP requests for the jobs-search endpoint
type VagasHandler struct {
	vagasService service.VagasServiceInterface
}

// NewVagasHandler creates a new jobs-search handler
func NewVagasHandler(vagasService service.VagasServiceInterface) *VagasHandler {
	return &VagasHandler{vagasService: vagasService}
}

// BuscarVagas handles POST /api/buscar-vagas
// @Summary Legal jobs search
// @Description Search the jobs board for legal positions; each distinct search is cached for one hour
// @Tags vagas
// @Accept json
// @Produce json
// @Param request body service.BuscaVagasRequest true "Search parameters"
// @Success 200 {object} service.BuscaVagasResponse "Normalized postings with pagination and average salary"
// @Failure 400 {object} map[string]interface{} "keywords is required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/buscar-vagas [post]
func (h *VagasHandler) BuscarVagas(c *gin.Context) {
	var req service.BuscaVagasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidJSON.Error()})
		return
	}

	resp, err := h.vagasService.BuscarVagas(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
