package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/prosody"
	"github.com/songcraft-labs/songcraft-api/internal/theory"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"engine": gin.H{
			"supported_keys":   len(theory.SupportedKeys()),
			"rhythm_templates": len(prosody.TemplateNames()),
		},
	})
}
