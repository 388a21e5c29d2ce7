package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/contentfilter"
)

type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

type ContentValidateRequest struct {
	Content string                `json:"content"`
	Policy  *contentfilter.Policy `json:"policy"`
}

// Validate screens text against the content policy. Omitting the policy
// applies the default one.
func (h *ContentHandler) Validate(c *gin.Context) {
	var req ContentValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policy := contentfilter.DefaultPolicy()
	if req.Policy != nil {
		policy = *req.Policy
	}

	result := contentfilter.Validate(req.Content, policy)

	c.JSON(http.StatusOK, result)
}
