package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品成色
const (
	ConditionNew      = "NEW"
	ConditionLikeNew  = "LIKE_NEW"
	ConditionGood     = "GOOD"
	ConditionUsed     = "USED"
	ConditionForParts = "FOR_PARTS"
)

var ListingConditions = []string{
	ConditionNew, ConditionLikeNew, ConditionGood, ConditionUsed, ConditionForParts,
}

type Listing struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Condition   string          `json:"condition"`
	Location    string          `json:"location"`
	Images      []string        `json:"images"`
	UserID      int             `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ListingPatch struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Condition   *string
	Location    *string
	Images      *[]string
}

// ListingFilter 各条件 AND 组合；nil 字段不限制
type ListingFilter struct {
	Search    *string // title/description 子串（不区分大小写）
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Category  *string
	Condition *string
}
