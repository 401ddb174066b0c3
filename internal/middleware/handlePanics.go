package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func HandlePanics() gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		if err, ok := recovered.(error); ok {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Panic while handling request")
		} else {
			log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Panic while handling request")
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
