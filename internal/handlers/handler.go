package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackbridge/hackathon-backend/internal/apperrors"
)

// parseDate parses the YYYY-MM-DD format the frontend sends
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// respondError renders a service error with its stable status and code so
// the frontend can key messages off the code rather than parsing text
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	c.JSON(kind.HTTPStatus(), gin.H{
		"error": err.Error(),
		"code":  kind.Code(),
	})
}
