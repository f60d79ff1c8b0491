package store

import "go-graphql-marketplace/internal/domain"

func (s *Store) CreateOrder(o domain.Order) domain.Order {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	o.ID = s.nextOrder
	s.nextOrder++
	now := s.now()
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders = append(s.orders, o)
	return o
}

func (s *Store) Order(id int) (domain.Order, bool) {
	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Store) Orders(f domain.OrderFilter) []domain.Order {
	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if f.UserID != nil && o.UserID != *f.UserID {
			continue
		}
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *Store) UpdateOrder(id int, p domain.OrderPatch) (domain.Order, bool) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if p.Quantity != nil {
			s.orders[i].Quantity = *p.Quantity
		}
		if p.TotalPrice != nil {
			s.orders[i].TotalPrice = *p.TotalPrice
		}
		if p.Status != nil {
			s.orders[i].Status = *p.Status
		}
		if p.ShippingAddress != nil {
			s.orders[i].ShippingAddress = *p.ShippingAddress
		}
		if p.Notes != nil {
			s.orders[i].Notes = *p.Notes
		}
		if p.CancelReason != nil {
			s.orders[i].CancelReason = *p.CancelReason
		}
		if p.CancelledAt != nil {
			s.orders[i].CancelledAt = p.CancelledAt
		}
		s.orders[i].UpdatedAt = s.now()
		return s.orders[i], true
	}
	return domain.Order{}, false
}

func (s *Store) DeleteOrder(id int) bool {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}
