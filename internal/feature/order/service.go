package order

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/core/bus"
	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/store"
	"go-graphql-marketplace/internal/validate"
)

const defaultCancelReason = "Cancelled by user"

type CreateInput struct {
	ListingID       int
	Quantity        int
	ShippingAddress domain.ShippingAddress
	Notes           string
}

type UpdateInput struct {
	Quantity        *int
	ShippingAddress *domain.ShippingAddress
	Notes           *string
}

// StatusEvent 发到 bus.TopicOrderStatus 的载荷
type StatusEvent struct {
	OrderID int    `json:"orderId"`
	UserID  int    `json:"userId"`
	Status  string `json:"status"`
}

type Service struct {
	store *store.Store
	bus   *bus.Bus
	log   *zap.Logger
}

func NewService(s *store.Store, b *bus.Bus, l *zap.Logger) *Service {
	return &Service{store: s, bus: b, log: l}
}

// Get 订单只对买家本人可见；存在性先于属主校验
func (s *Service) Get(ident *auth.Identity, id int) (domain.Order, error) {
	if _, err := auth.RequireAuth(ident); err != nil {
		return domain.Order{}, err
	}
	o, ok := s.store.Order(id)
	if !ok {
		return domain.Order{}, domain.NotFound("Order not found")
	}
	if _, err := auth.RequireOwner(ident, o.UserID); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// List 不带 userId 过滤时限定为调用者本人；显式要别人的订单直接 FORBIDDEN
func (s *Service) List(ident *auth.Identity, f domain.OrderFilter, page, limit int) ([]domain.Order, domain.PageInfo, error) {
	ident, err := auth.RequireAuth(ident)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if f.UserID != nil && *f.UserID != ident.ID {
		return nil, domain.PageInfo{}, domain.Forbidden("You can only view your own orders")
	}
	if f.Status != nil {
		if err := validate.OrderStatus(*f.Status); err != nil {
			return nil, domain.PageInfo{}, err
		}
	}
	f.UserID = &ident.ID

	orders := s.store.Orders(f)
	pageSlice, info := store.Paginate(orders, page, limit)
	return pageSlice, info, nil
}

// Create 下单前先确认 listing 存在；总价 = 当前标价 × 数量，之后冻结
func (s *Service) Create(ident *auth.Identity, in CreateInput) (domain.Order, error) {
	ident, err := auth.RequireAuth(ident)
	if err != nil {
		return domain.Order{}, err
	}
	l, ok := s.store.Listing(in.ListingID)
	if !ok {
		return domain.Order{}, domain.NotFound("Listing not found")
	}
	if err := validate.Quantity(in.Quantity); err != nil {
		return domain.Order{}, err
	}
	if err := validateAddress(in.ShippingAddress); err != nil {
		return domain.Order{}, err
	}

	o := s.store.CreateOrder(domain.Order{
		UserID:          ident.ID,
		ListingID:       l.ID,
		Quantity:        in.Quantity,
		TotalPrice:      l.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:          domain.StatusPending,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
	})
	s.bus.Publish(bus.TopicOrderStatus, StatusEvent{OrderID: o.ID, UserID: o.UserID, Status: o.Status})
	s.log.Info("order created", zap.Int("id", o.ID), zap.Int("listing", l.ID))
	return o, nil
}

// Update 改数量时总价按 listing 的当前价重算（重新读一次，不用下单时的快照）
func (s *Service) Update(ident *auth.Identity, id int, in UpdateInput) (domain.Order, error) {
	existing, ok := s.store.Order(id)
	if !ok {
		return domain.Order{}, domain.NotFound("Order not found")
	}
	if _, err := auth.RequireOwner(ident, existing.UserID); err != nil {
		return domain.Order{}, err
	}

	patch := domain.OrderPatch{
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
	}
	if in.ShippingAddress != nil {
		if err := validateAddress(*in.ShippingAddress); err != nil {
			return domain.Order{}, err
		}
	}
	if in.Quantity != nil {
		if err := validate.Quantity(*in.Quantity); err != nil {
			return domain.Order{}, err
		}
		l, ok := s.store.Listing(existing.ListingID)
		if !ok {
			return domain.Order{}, domain.NotFound("Listing not found")
		}
		total := l.Price.Mul(decimal.NewFromInt(int64(*in.Quantity)))
		patch.Quantity = in.Quantity
		patch.TotalPrice = &total
	}

	o, ok := s.store.UpdateOrder(id, patch)
	if !ok {
		return domain.Order{}, domain.Internal("Failed to update order")
	}
	return o, nil
}

func (s *Service) Delete(ident *auth.Identity, id int) (bool, error) {
	existing, ok := s.store.Order(id)
	if !ok {
		return false, domain.NotFound("Order not found")
	}
	if _, err := auth.RequireOwner(ident, existing.UserID); err != nil {
		return false, err
	}
	if !s.store.DeleteOrder(id) {
		return false, domain.Internal("Failed to delete order")
	}
	return true, nil
}

// Cancel 终态保护：已取消/已送达的订单不能再取消，重复取消是错误不是幂等成功
func (s *Service) Cancel(ident *auth.Identity, id int, reason string) (domain.Order, error) {
	existing, ok := s.store.Order(id)
	if !ok {
		return domain.Order{}, domain.NotFound("Order not found")
	}
	if _, err := auth.RequireOwner(ident, existing.UserID); err != nil {
		return domain.Order{}, err
	}
	switch existing.Status {
	case domain.StatusCancelled:
		return domain.Order{}, domain.InvalidOp("Order is already cancelled")
	case domain.StatusDelivered:
		return domain.Order{}, domain.InvalidOp("Delivered orders cannot be cancelled")
	}
	if reason == "" {
		reason = defaultCancelReason
	}

	status := domain.StatusCancelled
	now := s.store.Now()
	o, ok := s.store.UpdateOrder(id, domain.OrderPatch{
		Status:       &status,
		CancelReason: &reason,
		CancelledAt:  &now,
	})
	if !ok {
		return domain.Order{}, domain.Internal("Failed to cancel order")
	}
	s.bus.Publish(bus.TopicOrderStatus, StatusEvent{OrderID: o.ID, UserID: o.UserID, Status: o.Status})
	return o, nil
}

// UpdateStatus 只允许正向流转；CANCELLED 也可由这里进入（终态校验同 Cancel）
func (s *Service) UpdateStatus(ident *auth.Identity, id int, status string) (domain.Order, error) {
	existing, ok := s.store.Order(id)
	if !ok {
		return domain.Order{}, domain.NotFound("Order not found")
	}
	if _, err := auth.RequireOwner(ident, existing.UserID); err != nil {
		return domain.Order{}, err
	}
	if err := validate.OrderStatus(status); err != nil {
		return domain.Order{}, err
	}
	if !domain.CanTransition(existing.Status, status) {
		return domain.Order{}, domain.InvalidOp("Cannot change status from " + existing.Status + " to " + status)
	}

	patch := domain.OrderPatch{Status: &status}
	if status == domain.StatusCancelled {
		reason := defaultCancelReason
		now := s.store.Now()
		patch.CancelReason = &reason
		patch.CancelledAt = &now
	}
	o, ok := s.store.UpdateOrder(id, patch)
	if !ok {
		return domain.Order{}, domain.Internal("Failed to update order status")
	}
	s.bus.Publish(bus.TopicOrderStatus, StatusEvent{OrderID: o.ID, UserID: o.UserID, Status: o.Status})
	return o, nil
}

func validateAddress(a domain.ShippingAddress) error {
	for _, err := range []error{
		validate.Required("street", a.Street),
		validate.Required("city", a.City),
		validate.Required("zip", a.Zip),
		validate.Required("country", a.Country),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
