package gateway

import (
	"net/http"

	"github.com/example/storefront/pkg/service"
	"github.com/gin-gonic/gin"
)

// All responses share the {success, message, data?, error?} envelope.

func respond(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case service.IsValidation(err), service.IsInsufficientStock(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case service.IsAuth(err):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case service.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fallback,
			"error":   err.Error(),
		})
	}
}
