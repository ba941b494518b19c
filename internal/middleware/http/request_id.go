package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mukunt07/subramaniya-mess/pkg/snowflake"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-Id"

// NewRequestIDMiddleware tags every request with a snowflake id unless the
// client already sent one. The id rides along in logs and the response.
func NewRequestIDMiddleware(gen *snowflake.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			if id, err := gen.GetID(); err == nil {
				requestID = strconv.FormatUint(id, 10)
			}
		}
		if requestID != "" {
			c.Set("request_id", requestID)
			c.Writer.Header().Set(RequestIDHeader, requestID)
		}
		c.Next()
	}
}
