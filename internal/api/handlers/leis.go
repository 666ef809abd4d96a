package handlers

import (
	"net/http"

	"direito-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeisHandler handles HTTP requests for the recent-laws endpoint
type LeisHandler struct {
	leisService service.LeisServiceInterface
}

// NewLeisHandler creates a new recent-laws handler
func NewLeisHandler(leisService service.LeisServiceInterface) *LeisHandler {
	return &LeisHandler{leisService: leisService}
}

// GetLeisRecentes handles POST /api/leis-recentes (and GET, for the UI's
// refresh button).
// @Summary Recently published norms
// @Description Return the most recently published federal norms, cached for six hours
// @Tags leis
// @Accept json
// @Produce json
// @Success 200 {object} service.LeisRecentesResponse "Laws with provenance marker"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/leis-recentes [post]
func (h *LeisHandler) GetLeisRecentes(c *gin.Context) {
	resp, err := h.leisService.GetLeisRecentes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
