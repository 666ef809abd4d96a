package handlers

import (
	"net/http"

	apperrors "direito-hub-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the wire contract: validation
// failures are 400, missing entities 404, everything else (configuration,
// upstream, parse, unexpected) is a 500 with {error: message}. There is no
// machine-readable error code taxonomy; clients surface the message as-is.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
