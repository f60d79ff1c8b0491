package store

import (
	"github.com/shopspring/decimal"

	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/pkg/utils"
)

// Seed 写入演示数据（demo@example.com / password123）。
// 只在空库上生效，重复调用不会翻倍。
func (s *Store) Seed() {
	s.usersMu.RLock()
	empty := len(s.users) == 0
	s.usersMu.RUnlock()
	if !empty {
		return
	}

	demo := s.CreateUser(domain.User{
		Username:     "demo",
		Email:        "demo@example.com",
		PasswordHash: utils.HashPassword("password123"),
	})

	bike := s.CreateListing(domain.Listing{
		Title:       "Trek mountain bike",
		Description: "Hardtail, 29er, recently serviced",
		Price:       decimal.NewFromInt(450),
		Category:    "sports",
		Condition:   domain.ConditionGood,
		Location:    "Tallinn",
		Images:      []string{"img://seed-bike"},
		UserID:      demo.ID,
	})
	s.CreateListing(domain.Listing{
		Title:       "iPhone 13, 128GB",
		Description: "Minor scratches on the frame, battery 87%",
		Price:       decimal.NewFromInt(380),
		Category:    "electronics",
		Condition:   domain.ConditionUsed,
		Location:    "Tartu",
		Images:      []string{"img://seed-phone"},
		UserID:      demo.ID,
	})

	s.CreateOrder(domain.Order{
		UserID:     demo.ID,
		ListingID:  bike.ID,
		Quantity:   1,
		TotalPrice: bike.Price,
		Status:     domain.StatusPending,
		ShippingAddress: domain.ShippingAddress{
			Street:  "Narva mnt 1",
			City:    "Tallinn",
			State:   "Harjumaa",
			Zip:     "10117",
			Country: "EE",
		},
	})
}
