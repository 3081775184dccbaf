package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"phone-assistant/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id, echoed in the response header and
// attached to the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = ulid.Make().String()
		}
		c.Writer.Header().Set(HeaderRequestID, id)

		ctx := log.WithFields(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
