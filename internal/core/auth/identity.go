package auth

import (
	"context"

	"go-graphql-marketplace/internal/domain"
)

// Identity 通过中间件从 Bearer token 解出的调用者身份。
// Token 保留原串，logout 时用来从会话集合里摘除。
type Identity struct {
	ID       int
	Email    string
	Username string
	Token    string
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext 未登录返回 nil —— 本身不是错误，要不要拒绝由具体操作决定
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(ctxKey{}).(*Identity)
	return id
}

// RequireAuth 无身份即 UNAUTHENTICATED
func RequireAuth(id *Identity) (*Identity, error) {
	if id == nil {
		return nil, domain.Unauthenticated("You must be logged in to perform this action")
	}
	return id, nil
}

// RequireOwner 先 RequireAuth，再比对资源属主
func RequireOwner(id *Identity, ownerID int) (*Identity, error) {
	id, err := RequireAuth(id)
	if err != nil {
		return nil, err
	}
	if id.ID != ownerID {
		return nil, domain.Forbidden("You are not allowed to access this resource")
	}
	return id, nil
}
