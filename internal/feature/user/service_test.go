package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/session"
	"go-graphql-marketplace/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store, session.Store) {
	t.Helper()
	st := store.New()
	j := &auth.JWTer{Secret: []byte("test"), Issuer: "test", TTL: 24 * time.Hour}
	sess := session.NewMemory()
	return NewService(st, j, sess, zap.NewNop()), st, sess
}

func validInput() CreateInput {
	return CreateInput{Username: "alice", Email: "alice@example.com", Password: "secret6"}
}

func TestRegister(t *testing.T) {
	svc, _, _ := newTestService(t)

	u, err := svc.Register(validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "secret6", u.PasswordHash, "password stored hashed")
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name  string
		mut   func(*CreateInput)
		field string
	}{
		{"missing username", func(in *CreateInput) { in.Username = "" }, "username"},
		{"short username", func(in *CreateInput) { in.Username = "ab" }, "username"},
		{"missing email", func(in *CreateInput) { in.Email = "" }, "email"},
		{"bad email", func(in *CreateInput) { in.Email = "nope" }, "email"},
		{"short password", func(in *CreateInput) { in.Password = "12345" }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mut(&in)
			_, err := svc.Register(in)
			require.Error(t, err)
			e := err.(*domain.Error)
			assert.Equal(t, domain.CodeValidation, e.Code)
			assert.Equal(t, tt.field, e.Field)
		})
	}
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Username = "bob"
	_, err = svc.Register(in)
	require.Error(t, err)
	assert.Equal(t, domain.CodeConflict, domain.CodeOf(err))
}

func TestLogin(t *testing.T) {
	svc, _, sess := newTestService(t)
	ctx := context.Background()
	reg, err := svc.Register(validInput())
	require.NoError(t, err)

	tok, u, err := svc.Login(ctx, "alice@example.com", "secret6")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	assert.True(t, sess.Valid(ctx, tok), "login registers the session")
}

func TestLogin_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(validInput())
	require.NoError(t, err)

	_, _, err1 := svc.Login(ctx, "nobody@example.com", "secret6")
	_, _, err2 := svc.Login(ctx, "alice@example.com", "wrong-pass")

	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, domain.CodeAuthFailed, domain.CodeOf(err1))
	assert.Equal(t, domain.CodeAuthFailed, domain.CodeOf(err2))
	// 两种失败不可区分，防止撞库摸出已注册邮箱
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, _, sess := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(validInput())
	require.NoError(t, err)
	tok, u, err := svc.Login(ctx, "alice@example.com", "secret6")
	require.NoError(t, err)

	ident := &auth.Identity{ID: u.ID, Token: tok}
	require.NoError(t, svc.Logout(ctx, ident))
	assert.False(t, sess.Valid(ctx, tok), "token invalid after logout even before expiry")

	// 未登录调 logout 是 UNAUTHENTICATED
	err = svc.Logout(ctx, nil)
	assert.Equal(t, domain.CodeUnauthed, domain.CodeOf(err))
}

func TestGet_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Get(99)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestUpdate_OwnershipAndConflict(t *testing.T) {
	svc, _, _ := newTestService(t)
	a, err := svc.Register(validInput())
	require.NoError(t, err)
	b, err := svc.Register(CreateInput{Username: "bob", Email: "bob@example.com", Password: "secret6"})
	require.NoError(t, err)

	identA := &auth.Identity{ID: a.ID}

	// NotFound 先于 Forbidden
	_, err = svc.Update(identA, 99, UpdateInput{})
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	// 非属主
	_, err = svc.Update(identA, b.ID, UpdateInput{})
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	// 未登录
	_, err = svc.Update(nil, a.ID, UpdateInput{})
	assert.Equal(t, domain.CodeUnauthed, domain.CodeOf(err))

	// 邮箱撞到别人 → CONFLICT
	email := "bob@example.com"
	_, err = svc.Update(identA, a.ID, UpdateInput{Email: &email})
	assert.Equal(t, domain.CodeConflict, domain.CodeOf(err))

	// 改回自己的邮箱不算冲突
	own := "alice@example.com"
	u, err := svc.Update(identA, a.ID, UpdateInput{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, own, u.Email)
}

func TestDelete(t *testing.T) {
	svc, st, _ := newTestService(t)
	a, err := svc.Register(validInput())
	require.NoError(t, err)

	_, err = svc.Delete(&auth.Identity{ID: a.ID + 1}, a.ID)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	ok, err := svc.Delete(&auth.Identity{ID: a.ID}, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	_, found := st.User(a.ID)
	assert.False(t, found)
}
