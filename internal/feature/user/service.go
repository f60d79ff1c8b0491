package user

import (
	"context"

	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/session"
	"go-graphql-marketplace/internal/store"
	"go-graphql-marketplace/internal/validate"
	"go-graphql-marketplace/pkg/utils"
)

// 登录失败统一一句话，避免撞库时区分“账号不存在”和“密码错误”
const badCredentials = "Invalid email or password"

type CreateInput struct {
	Username string
	Email    string
	Password string
}

type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
}

type Service struct {
	store    *store.Store
	jwter    *auth.JWTer
	sessions session.Store
	log      *zap.Logger
}

func NewService(s *store.Store, j *auth.JWTer, sess session.Store, l *zap.Logger) *Service {
	return &Service{store: s, jwter: j, sessions: sess, log: l}
}

func (s *Service) Register(in CreateInput) (domain.User, error) {
	for _, err := range []error{
		validate.Required("username", in.Username),
		validate.Required("email", in.Email),
		validate.Required("password", in.Password),
		validate.Username(in.Username),
		validate.Email(in.Email),
		validate.Password(in.Password),
	} {
		if err != nil {
			return domain.User{}, err
		}
	}
	if _, ok := s.store.UserByEmail(in.Email); ok {
		return domain.User{}, domain.Conflict("Email is already registered")
	}

	u := s.store.CreateUser(domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
	})
	s.log.Info("user registered", zap.Int("id", u.ID))
	return u, nil
}

// Login 校验凭证、签发 24h token 并登记会话
func (s *Service) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	u, ok := s.store.UserByEmail(email)
	if !ok || !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.User{}, domain.AuthFailed(badCredentials)
	}
	tok, err := s.jwter.Issue(u)
	if err != nil {
		return "", domain.User{}, domain.Internal("Failed to issue token")
	}
	if err := s.sessions.Add(ctx, tok, s.jwter.TTL); err != nil {
		return "", domain.User{}, domain.Internal("Failed to start session")
	}
	return tok, u, nil
}

// Logout 把当前 token 从会话集合摘除；之后即使签名没过期也会被拒
func (s *Service) Logout(ctx context.Context, ident *auth.Identity) error {
	ident, err := auth.RequireAuth(ident)
	if err != nil {
		return err
	}
	if err := s.sessions.Remove(ctx, ident.Token); err != nil {
		return domain.Internal("Failed to end session")
	}
	return nil
}

func (s *Service) Get(id int) (domain.User, error) {
	u, ok := s.store.User(id)
	if !ok {
		return domain.User{}, domain.NotFound("User not found")
	}
	return u, nil
}

// Update 先查存在（NotFound 优先于 Forbidden），再做属主校验
func (s *Service) Update(ident *auth.Identity, id int, in UpdateInput) (domain.User, error) {
	existing, ok := s.store.User(id)
	if !ok {
		return domain.User{}, domain.NotFound("User not found")
	}
	if _, err := auth.RequireOwner(ident, existing.ID); err != nil {
		return domain.User{}, err
	}

	patch := domain.UserPatch{}
	if in.Username != nil {
		if err := validate.Username(*in.Username); err != nil {
			return domain.User{}, err
		}
		patch.Username = in.Username
	}
	if in.Email != nil {
		if err := validate.Email(*in.Email); err != nil {
			return domain.User{}, err
		}
		if other, ok := s.store.UserByEmail(*in.Email); ok && other.ID != id {
			return domain.User{}, domain.Conflict("Email is already registered")
		}
		patch.Email = in.Email
	}
	if in.Password != nil {
		if err := validate.Password(*in.Password); err != nil {
			return domain.User{}, err
		}
		h := utils.HashPassword(*in.Password)
		patch.PasswordHash = &h
	}

	u, ok := s.store.UpdateUser(id, patch)
	if !ok {
		return domain.User{}, domain.Internal("Failed to update user")
	}
	return u, nil
}

func (s *Service) Delete(ident *auth.Identity, id int) (bool, error) {
	existing, ok := s.store.User(id)
	if !ok {
		return false, domain.NotFound("User not found")
	}
	if _, err := auth.RequireOwner(ident, existing.ID); err != nil {
		return false, err
	}
	if !s.store.DeleteUser(id) {
		return false, domain.Internal("Failed to delete user")
	}
	s.log.Info("user deleted", zap.Int("id", id))
	return true, nil
}
