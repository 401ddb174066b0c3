package rest

import (
	"errors"
	"net/http"

	"github.com/dfryer1193/mdblog/api"
	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetTrash(c *gin.Context) {
	posts, err := h.service.Trash(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]api.Post, 0, len(posts))
	for _, post := range posts {
		out = append(out, toAPIPost(post, ""))
	}
	c.JSON(http.StatusOK, out)
}

// TrashPost soft-deletes; the repository swallows failures by design, so the
// response is always 204.
func (h *Handler) TrashPost(c *gin.Context) {
	_ = h.service.MoveToTrash(c.Request.Context(), c.Param("postId"))
	c.Status(http.StatusNoContent)
}

// RestorePost mirrors TrashPost: failures are logged repository-side.
func (h *Handler) RestorePost(c *gin.Context) {
	_ = h.service.Restore(c.Request.Context(), c.Param("postId"))
	c.Status(http.StatusNoContent)
}

// PurgePost is irreversible, so unlike the other trash operations every
// failure surfaces to the caller.
func (h *Handler) PurgePost(c *gin.Context) {
	err := h.service.Purge(c.Request.Context(), c.Param("postId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		if errors.Is(err, domain.ErrNotInTrash) {
			c.JSON(http.StatusConflict, gin.H{"error": "only posts in the trash can be permanently deleted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
