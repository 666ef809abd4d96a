package handlers

import (
	"net/http"

	apperrors "direito-hub-backend/internal/errors"
	"direito-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RankingHandler handles HTTP requests for the legislator-ranking endpoint
type RankingHandler struct {
	rankingService service.RankingServiceInterface
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(rankingService service.RankingServiceInterface) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

// GetRanking handles POST /api/ranking-deputados
// @Summary Legislator ranking
// @Description Rank legislators by expenses or authored bills for a period, cached for 24 hours
// @Tags ranking
// @Accept json
// @Produce json
// @Param request body service.RankingRequest true "Ranking parameters"
// @Success 200 {object} service.RankingResponse "Ranking with period and provenance"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/ranking-deputados [post]
func (h *RankingHandler) GetRanking(c *gin.Context) {
	var req service.RankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidJSON.Error()})
		return
	}

	resp, err := h.rankingService.GetRanking(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
