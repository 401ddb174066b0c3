package rest

import (
	"net/http"

	"github.com/dfryer1193/mdblog/api"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetHistory(c *gin.Context) {
	years, err := h.service.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]api.HistoryYear, 0, len(years))
	for _, year := range years {
		months := make([]api.HistoryMonth, 0, len(year.Months))
		for _, month := range year.Months {
			posts := make([]api.Post, 0, len(month.Posts))
			for _, post := range month.Posts {
				posts = append(posts, toAPIPost(post, h.service.Snippet(post.Content)))
			}
			months = append(months, api.HistoryMonth{Month: month.Month, Posts: posts})
		}
		out = append(out, api.HistoryYear{Year: year.Year, Months: months})
	}
	c.JSON(http.StatusOK, out)
}
