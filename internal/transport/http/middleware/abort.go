package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortError 中间件层的拒绝也用 GraphQL 风格的 {errors:[...]} 信封，
// 客户端不用区分错误来自执行器还是外层
func abortError(c *gin.Context, code, msg string) {
	c.AbortWithStatusJSON(http.StatusOK, gin.H{
		"errors": []gin.H{
			{"message": msg, "extensions": gin.H{"code": code}},
		},
	})
}
