package listing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/core/bus"
	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/store"
	"go-graphql-marketplace/internal/validate"
	"go-graphql-marketplace/pkg/utils"
)

type CreateInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Category    string
	Condition   string
	Location    string
	Images      []string
}

type UpdateInput struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Condition   *string
	Location    *string
	Images      *[]string
}

type Service struct {
	store *store.Store
	bus   *bus.Bus
	log   *zap.Logger
}

func NewService(s *store.Store, b *bus.Bus, l *zap.Logger) *Service {
	return &Service{store: s, bus: b, log: l}
}

func (s *Service) Get(id int) (domain.Listing, error) {
	l, ok := s.store.Listing(id)
	if !ok {
		return domain.Listing{}, domain.NotFound("Listing not found")
	}
	return l, nil
}

func (s *Service) List(f domain.ListingFilter) []domain.Listing {
	return s.store.Listings(f)
}

// Create 登录用户即可发布，创建者即属主；图片入参换成占位引用
func (s *Service) Create(ident *auth.Identity, in CreateInput) (domain.Listing, error) {
	ident, err := auth.RequireAuth(ident)
	if err != nil {
		return domain.Listing{}, err
	}
	for _, err := range []error{
		validate.Required("title", in.Title),
		validate.Required("category", in.Category),
		validate.Price(in.Price),
		validate.Condition(in.Condition),
	} {
		if err != nil {
			return domain.Listing{}, err
		}
	}

	refs := make([]string, 0, len(in.Images))
	for range in.Images {
		refs = append(refs, utils.NewImageRef())
	}

	l := s.store.CreateListing(domain.Listing{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Condition:   in.Condition,
		Location:    in.Location,
		Images:      refs,
		UserID:      ident.ID,
	})
	s.bus.Publish(bus.TopicListingCreated, l)
	s.log.Info("listing created", zap.Int("id", l.ID), zap.Int("user", ident.ID))
	return l, nil
}

func (s *Service) Update(ident *auth.Identity, id int, in UpdateInput) (domain.Listing, error) {
	existing, ok := s.store.Listing(id)
	if !ok {
		return domain.Listing{}, domain.NotFound("Listing not found")
	}
	if _, err := auth.RequireOwner(ident, existing.UserID); err != nil {
		return domain.Listing{}, err
	}

	if in.Price != nil {
		if err := validate.Price(*in.Price); err != nil {
			return domain.Listing{}, err
		}
	}
	if in.Condition != nil {
		if err := validate.Condition(*in.Condition); err != nil {
			return domain.Listing{}, err
		}
	}
	if in.Title != nil {
		if err := validate.Required("title", *in.Title); err != nil {
			return domain.Listing{}, err
		}
	}

	patch := domain.ListingPatch{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Condition:   in.Condition,
		Location:    in.Location,
	}
	if in.Images != nil {
		refs := make([]string, 0, len(*in.Images))
		for range *in.Images {
			refs = append(refs, utils.NewImageRef())
		}
		patch.Images = &refs
	}

	l, ok := s.store.UpdateListing(id, patch)
	if !ok {
		return domain.Listing{}, domain.Internal("Failed to update listing")
	}
	return l, nil
}

// Delete 已有订单保留冻结的 totalPrice，不受下架影响
func (s *Service) Delete(ident *auth.Identity, id int) (bool, error) {
	existing, ok := s.store.Listing(id)
	if !ok {
		return false, domain.NotFound("Listing not found")
	}
	if _, err := auth.RequireOwner(ident, existing.UserID); err != nil {
		return false, err
	}
	if !s.store.DeleteListing(id) {
		return false, domain.Internal("Failed to delete listing")
	}
	return true, nil
}
