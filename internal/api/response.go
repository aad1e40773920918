package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"weekenddiaries/domain/core"
	apperrors "weekenddiaries/internal/errors"
)

func timestamp() string {
	return core.Now().ISO()
}

// respond writes a success envelope around body.
func respond(c *gin.Context, status int, body gin.H) {
	body["success"] = true
	body["timestamp"] = timestamp()
	c.JSON(status, body)
}

// respondError maps err to a coded error envelope. Causes are logged, never
// sent to clients.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.FromDomain(err)
	status := apperrors.HTTPStatus(appErr.Code)
	if status >= 500 {
		log.Printf("[API] %s %s failed (request %s): %v", c.Request.Method, c.Request.URL.Path, c.GetString("requestID"), err)
	}
	c.JSON(status, gin.H{
		"success":   false,
		"error":     appErr.Message,
		"code":      appErr.Code,
		"timestamp": timestamp(),
	})
}
