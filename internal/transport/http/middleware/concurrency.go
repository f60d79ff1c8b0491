package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-graphql-marketplace/internal/domain"
)

// ConcurrencyLimit 限制同时在处理的请求数（内存 store 全靠线性扫，别被打爆）
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			abortError(c, domain.CodeInternal, "server busy")
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
