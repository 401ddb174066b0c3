package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetTags(c *gin.Context) {
	tags, err := h.service.Tags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}
