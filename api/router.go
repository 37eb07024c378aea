package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		service.requestIDMiddleware(),
		service.loggerMiddleware(),
		service.corsMiddleware(),
	)

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST(ParseURL, service.parseText)

	server.Handler = router
	service.router = router
}
