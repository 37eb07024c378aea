package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opalarchive/parser/bbcode"
	"github.com/opalarchive/parser/util"
)

const (
	// api routes
	PingURL  = "/ping"
	ParseURL = "/v1/parse"
)

type Service struct {
	config util.Config
	parser *bbcode.Parser
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with the provided config. The parser is built
// once here and shared by every request.
func NewService(config util.Config) (*Service, error) {
	service := &Service{
		config: config,
		parser: bbcode.New(DefaultTagSet()),
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
