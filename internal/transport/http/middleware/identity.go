package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/session"
)

// Identity 尽力解析 Bearer token：签名/过期没问题且会话未登出时，
// 把身份放进 request context。缺 token 或 token 非法都不在这里拒——
// 未登录本身不是错误，需要身份的操作自己报 UNAUTHENTICATED。
func Identity(j *auth.JWTer, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.Next()
			return
		}
		tok := strings.TrimPrefix(ah, "Bearer ")

		claims, err := j.Parse(tok)
		if err != nil || !sessions.Valid(c.Request.Context(), tok) {
			c.Next() // 无效 token 等同未登录
			return
		}

		ident := &auth.Identity{
			ID:       claims.UID,
			Email:    claims.Email,
			Username: claims.Username,
			Token:    tok,
		}
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), ident))
		c.Next()
	}
}
