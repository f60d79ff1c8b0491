package store

import "go-graphql-marketplace/internal/domain"

func (s *Store) CreateUser(u domain.User) domain.User {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	u.ID = s.nextUser
	s.nextUser++
	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, u)
	return u
}

// User 按 id 查；查不到返回 (零值, false)，是否算错误由上层决定
func (s *Store) User(id int) (domain.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) UpdateUser(id int, p domain.UserPatch) (domain.User, bool) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if p.Username != nil {
			s.users[i].Username = *p.Username
		}
		if p.Email != nil {
			s.users[i].Email = *p.Email
		}
		if p.PasswordHash != nil {
			s.users[i].PasswordHash = *p.PasswordHash
		}
		s.users[i].UpdatedAt = s.now()
		return s.users[i], true
	}
	return domain.User{}, false
}

// DeleteUser 连带删掉该用户的 listings 和 orders（级联策略见 DESIGN.md）
func (s *Store) DeleteUser(id int) bool {
	s.usersMu.Lock()
	hit := false
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			hit = true
			break
		}
	}
	s.usersMu.Unlock()
	if !hit {
		return false
	}

	s.listingsMu.Lock()
	kept := s.listings[:0]
	for _, l := range s.listings {
		if l.UserID != id {
			kept = append(kept, l)
		}
	}
	s.listings = kept
	s.listingsMu.Unlock()

	s.ordersMu.Lock()
	keptOrders := s.orders[:0]
	for _, o := range s.orders {
		if o.UserID != id {
			keptOrders = append(keptOrders, o)
		}
	}
	s.orders = keptOrders
	s.ordersMu.Unlock()
	return true
}
