package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"

	// key under which the request id is stored in the gin context
	requestIDKey = "request_id"
)

// requestIDMiddleware tags every request with an id, reusing the client's one
// when present so ids stay stable across proxies. The id is echoed in the
// response header and picked up by the access logger.
func (service *Service) requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.Request.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}
