package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// 订单状态机：PENDING → CONFIRMED → SHIPPED → DELIVERED，
// 终态 CANCELLED 可从 DELIVERED 之前的任意状态进入
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusShipped   = "SHIPPED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

var OrderStatuses = []string{
	StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled,
}

// statusRank 正向流转用的序号；CANCELLED 不在主链上
var statusRank = map[string]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

// CanTransition 校验 from → to 是否合法（只允许正向，终态不可离开）
func CanTransition(from, to string) bool {
	if from == StatusCancelled || from == StatusDelivered {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	fr, ok1 := statusRank[from]
	tr, ok2 := statusRank[to]
	return ok1 && ok2 && tr > fr
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Order struct {
	ID              int             `json:"id"`
	UserID          int             `json:"userId"` // 买家
	ListingID       int             `json:"listingId"`
	Quantity        int             `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Notes           string          `json:"notes"`
	CancelReason    string          `json:"cancelReason"`
	CancelledAt     *time.Time      `json:"cancelledAt"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type OrderPatch struct {
	Quantity        *int
	TotalPrice      *decimal.Decimal
	Status          *string
	ShippingAddress *ShippingAddress
	Notes           *string
	CancelReason    *string
	CancelledAt     *time.Time
}

type OrderFilter struct {
	UserID *int
	Status *string
}
