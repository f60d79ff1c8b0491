// Package validate 纯字段校验：不碰状态、不做 IO，
// 违规时返回带字段名的 VALIDATION_ERROR。
package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"go-graphql-marketplace/internal/domain"
)

// local@domain.tld 的粗粒度形状检查，够用即可
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(v string) error {
	if !emailRe.MatchString(v) {
		return domain.Invalid("email", "Invalid email format")
	}
	return nil
}

func Password(v string) error {
	if len(v) < 6 {
		return domain.Invalid("password", "Password must be at least 6 characters long")
	}
	return nil
}

func Username(v string) error {
	if len(v) < 3 {
		return domain.Invalid("username", "Username must be at least 3 characters long")
	}
	return nil
}

func Price(v decimal.Decimal) error {
	if !v.IsPositive() {
		return domain.Invalid("price", "Price must be greater than 0")
	}
	return nil
}

func Quantity(v int) error {
	if v <= 0 {
		return domain.Invalid("quantity", "Quantity must be a positive integer")
	}
	return nil
}

func OrderStatus(v string) error {
	if !slices.Contains(domain.OrderStatuses, v) {
		return domain.Invalid("status", fmt.Sprintf("Invalid order status: %s", v))
	}
	return nil
}

func Condition(v string) error {
	if !slices.Contains(domain.ListingConditions, v) {
		return domain.Invalid("condition", fmt.Sprintf("Invalid listing condition: %s", v))
	}
	return nil
}

// Required 空串/空白视为缺失
func Required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return domain.Invalid(field, fmt.Sprintf("%s is required", field))
	}
	return nil
}
