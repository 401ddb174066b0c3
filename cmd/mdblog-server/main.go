package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dfryer1193/mdblog/blog/application"
	"github.com/dfryer1193/mdblog/blog/persistence"
	"github.com/dfryer1193/mdblog/internal/config"
	"github.com/dfryer1193/mdblog/internal/middleware"
	"github.com/dfryer1193/mdblog/internal/rest"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.PostsDir, 0755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.PostsDir).Msg("Failed to create posts directory")
	}

	postRepo := persistence.NewPostRepository(cfg.PostsDir)
	markdownRenderer := application.NewMarkdownRenderer()
	postService := application.NewPostService(postRepo, markdownRenderer)

	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	rest.NewApi(router, postService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
