package store

import (
	"strings"

	"go-graphql-marketplace/internal/domain"
)

func (s *Store) CreateListing(l domain.Listing) domain.Listing {
	s.listingsMu.Lock()
	defer s.listingsMu.Unlock()

	l.ID = s.nextListing
	s.nextListing++
	now := s.now()
	l.CreatedAt = now
	l.UpdatedAt = now
	s.listings = append(s.listings, l)
	return l
}

func (s *Store) Listing(id int) (domain.Listing, bool) {
	s.listingsMu.RLock()
	defer s.listingsMu.RUnlock()

	for _, l := range s.listings {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Listing{}, false
}

// Listings 返回满足所有给定条件的记录（AND），保持插入顺序
func (s *Store) Listings(f domain.ListingFilter) []domain.Listing {
	s.listingsMu.RLock()
	defer s.listingsMu.RUnlock()

	out := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if !matchListing(l, f) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchListing(l domain.Listing, f domain.ListingFilter) bool {
	if f.Search != nil {
		q := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}
	// 价格上下界都是闭区间
	if f.MinPrice != nil && l.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && l.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Category != nil && l.Category != *f.Category {
		return false
	}
	if f.Condition != nil && l.Condition != *f.Condition {
		return false
	}
	return true
}

func (s *Store) UpdateListing(id int, p domain.ListingPatch) (domain.Listing, bool) {
	s.listingsMu.Lock()
	defer s.listingsMu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID != id {
			continue
		}
		if p.Title != nil {
			s.listings[i].Title = *p.Title
		}
		if p.Description != nil {
			s.listings[i].Description = *p.Description
		}
		if p.Price != nil {
			s.listings[i].Price = *p.Price
		}
		if p.Category != nil {
			s.listings[i].Category = *p.Category
		}
		if p.Condition != nil {
			s.listings[i].Condition = *p.Condition
		}
		if p.Location != nil {
			s.listings[i].Location = *p.Location
		}
		if p.Images != nil {
			s.listings[i].Images = *p.Images
		}
		s.listings[i].UpdatedAt = s.now()
		return s.listings[i], true
	}
	return domain.Listing{}, false
}

func (s *Store) DeleteListing(id int) bool {
	s.listingsMu.Lock()
	defer s.listingsMu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return true
		}
	}
	return false
}
