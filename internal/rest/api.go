package rest

import (
	"github.com/dfryer1193/mdblog/api"
	"github.com/dfryer1193/mdblog/blog/application"
	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *application.PostService
}

func NewApi(router *gin.Engine, service *application.PostService) {
	h := &Handler{service: service}

	postsV1 := router.Group("posts/v1")
	{
		postsV1.GET("/", h.GetPosts)
		postsV1.POST("/", h.PublishPost)
		postsV1.POST("/upload", h.UploadPost)
		postsV1.GET("/trash", h.GetTrash)
		postsV1.GET("/:postId", h.GetPost)
		postsV1.PATCH("/:postId/date", h.UpdatePostDate)
		postsV1.DELETE("/:postId", h.TrashPost)
		postsV1.POST("/:postId/restore", h.RestorePost)
		postsV1.DELETE("/:postId/purge", h.PurgePost)
	}

	tagsV1 := router.Group("tags/v1")
	{
		tagsV1.GET("/", h.GetTags)
	}

	historyV1 := router.Group("history/v1")
	{
		historyV1.GET("/", h.GetHistory)
	}
}

func toAPIPost(post *domain.Post, snippet string) api.Post {
	return api.Post{
		ID:         post.ID,
		Title:      post.Title,
		Snippet:    snippet,
		Content:    post.Content,
		Tags:       post.Tags,
		Date:       post.Date,
		Image:      post.Image,
		IsNewest:   post.IsNewest,
		IsFeatured: post.IsFeatured,
		IsDeleted:  post.IsDeleted,
		DeletedAt:  post.DeletedAt,
	}
}
