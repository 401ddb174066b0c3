package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/dfryer1193/mdblog/api"
	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context(), c.Query("tag"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]api.Post, 0, len(posts))
	for _, post := range posts {
		out = append(out, toAPIPost(post, h.service.Snippet(post.Content)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetPost(c *gin.Context) {
	rendered, err := h.service.Rendered(c.Request.Context(), c.Param("postId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	toc := make([]api.TocEntry, 0, len(rendered.Toc))
	for _, heading := range rendered.Toc {
		toc = append(toc, api.TocEntry{
			ID:    heading.ID,
			Text:  heading.Text,
			Level: heading.Level,
		})
	}

	c.JSON(http.StatusOK, api.RenderedPost{
		Post: toAPIPost(rendered.Post, ""),
		HTML: rendered.HTML,
		Toc:  toc,
	})
}

func (h *Handler) PublishPost(c *gin.Context) {
	proto := &api.PostProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.Publish(c.Request.Context(), proto.Title, proto.Content, proto.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toAPIPost(post, ""))
}

func (h *Handler) UpdatePostDate(c *gin.Context) {
	proto := &api.DateProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse(domain.DateLayout, proto.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as " + domain.DateLayout})
		return
	}

	if err := h.service.UpdateDate(c.Request.Context(), c.Param("postId"), proto.Date); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
