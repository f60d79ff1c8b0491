package graphql

import (
	"github.com/shopspring/decimal"

	"go-graphql-marketplace/internal/domain"
)

// graphql-go 把 input object 给成 map[string]interface{}，
// 这里集中做取值/转指针，resolver 里只管业务。

func argMap(args map[string]interface{}, key string) (map[string]interface{}, bool) {
	m, ok := args[key].(map[string]interface{})
	return m, ok
}

func strArg(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intArg(m map[string]interface{}, key string) int {
	n, _ := m[key].(int)
	return n
}

func optStr(m map[string]interface{}, key string) *string {
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func optInt(m map[string]interface{}, key string) *int {
	if n, ok := m[key].(int); ok {
		return &n
	}
	return nil
}

// Float 入参统一转 decimal，金额运算不走二进制浮点
func optDecimal(m map[string]interface{}, key string) *decimal.Decimal {
	switch v := m[key].(type) {
	case float64:
		d := decimal.NewFromFloat(v)
		return &d
	case int:
		d := decimal.NewFromInt(int64(v))
		return &d
	}
	return nil
}

func decimalArg(m map[string]interface{}, key string) decimal.Decimal {
	if d := optDecimal(m, key); d != nil {
		return *d
	}
	return decimal.Zero
}

func strSliceArg(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func addressArg(m map[string]interface{}, key string) (domain.ShippingAddress, bool) {
	am, ok := argMap(m, key)
	if !ok {
		return domain.ShippingAddress{}, false
	}
	return domain.ShippingAddress{
		Street:  strArg(am, "street"),
		City:    strArg(am, "city"),
		State:   strArg(am, "state"),
		Zip:     strArg(am, "zip"),
		Country: strArg(am, "country"),
	}, true
}
