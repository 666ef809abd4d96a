package handlers

import (
	"net/http"

	apperrors "direito-hub-backend/internal/errors"
	"direito-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConteudoHandler handles HTTP requests for AI content enrichment
type ConteudoHandler struct {
	conteudoService service.ConteudoServiceInterface
}

// NewConteudoHandler creates a new AI-content handler
func NewConteudoHandler(conteudoService service.ConteudoServiceInterface) *ConteudoHandler {
	return &ConteudoHandler{conteudoService: conteudoService}
}

// MelhorarConteudo handles POST /api/melhorar-conteudo
// @Summary Improve study content with AI
// @Description Rewrite study content with the generative model; identical inputs are cached for seven days
// @Tags conteudo
// @Accept json
// @Produce json
// @Param request body service.MelhorarConteudoRequest true "Content to improve"
// @Success 200 {object} service.MelhorarConteudoResponse "Improved content with provenance"
// @Failure 400 {object} map[string]interface{} "Missing required field"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/melhorar-conteudo [post]
func (h *ConteudoHandler) MelhorarConteudo(c *gin.Context) {
	var req service.MelhorarConteudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidJSON.Error()})
		return
	}

	resp, err := h.conteudoService.MelhorarConteudo(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
