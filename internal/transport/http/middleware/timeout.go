package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"go-graphql-marketplace/internal/domain"
)

func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			abortError(c, domain.CodeInternal, "timeout")
		}
	}
}
