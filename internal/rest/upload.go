package rest

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dfryer1193/mdblog/blog/application"
	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) UploadPost(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if !strings.HasSuffix(fileHeader.Filename, ".md") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only markdown files are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags := application.ParseTagInput(c.PostForm("tags"))

	post, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, data, tags)
	if err != nil {
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toAPIPost(post, ""))
}
