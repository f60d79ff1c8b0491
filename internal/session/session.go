// Package session 有状态会话集合：login 写入、logout 摘除，
// 鉴权中间件对每个带身份的请求查一次成员关系。
// token 本身的签名/过期仍由 JWT 层负责，这里只管“有没有被登出”。
package session

import (
	"context"
	"time"
)

type Store interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Valid(ctx context.Context, token string) bool
	Remove(ctx context.Context, token string) error
}
