package graphql

import (
	gql "github.com/graphql-go/graphql"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/feature/order"
)

// orderPage 平铺的分页响应，字段名即 GraphQL 字段名
type orderPage struct {
	Orders          []domain.Order `json:"orders"`
	Total           int            `json:"total"`
	Pages           int            `json:"pages"`
	CurrentPage     int            `json:"currentPage"`
	HasNextPage     bool           `json:"hasNextPage"`
	HasPreviousPage bool           `json:"hasPreviousPage"`
}

func addOrderQueries(f gql.Fields, r Resolvers, t *types) {
	f["order"] = &gql.Field{
		Type: t.order,
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			return r.Orders.Get(auth.FromContext(p.Context), p.Args["id"].(int))
		},
	}

	f["orders"] = &gql.Field{
		Type: t.orderPage,
		Args: gql.FieldConfigArgument{
			"filter":     &gql.ArgumentConfig{Type: t.orderFilterInput},
			"pagination": &gql.ArgumentConfig{Type: t.paginationInput},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			filter := domain.OrderFilter{}
			if fm, ok := argMap(p.Args, "filter"); ok {
				filter.UserID = optInt(fm, "userId")
				filter.Status = optStr(fm, "status")
			}
			page, limit := 1, 10
			if pm, ok := argMap(p.Args, "pagination"); ok {
				if v := optInt(pm, "page"); v != nil {
					page = *v
				}
				if v := optInt(pm, "limit"); v != nil {
					limit = *v
				}
			}
			orders, info, err := r.Orders.List(auth.FromContext(p.Context), filter, page, limit)
			if err != nil {
				return nil, err
			}
			return orderPage{
				Orders:          orders,
				Total:           info.Total,
				Pages:           info.Pages,
				CurrentPage:     info.CurrentPage,
				HasNextPage:     info.HasNextPage,
				HasPreviousPage: info.HasPreviousPage,
			}, nil
		},
	}
}

func addOrderMutations(f gql.Fields, r Resolvers, t *types) {
	f["createOrder"] = &gql.Field{
		Type: t.order,
		Args: gql.FieldConfigArgument{
			"input": &gql.ArgumentConfig{Type: gql.NewNonNull(t.createOrderInput)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			in, _ := argMap(p.Args, "input")
			addr, _ := addressArg(in, "shippingAddress")
			return r.Orders.Create(auth.FromContext(p.Context), order.CreateInput{
				ListingID:       intArg(in, "listingId"),
				Quantity:        intArg(in, "quantity"),
				ShippingAddress: addr,
				Notes:           strArg(in, "notes"),
			})
		},
	}

	f["updateOrder"] = &gql.Field{
		Type: t.order,
		Args: gql.FieldConfigArgument{
			"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
			"input": &gql.ArgumentConfig{Type: gql.NewNonNull(t.updateOrderInput)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			in, _ := argMap(p.Args, "input")
			upd := order.UpdateInput{
				Quantity: optInt(in, "quantity"),
				Notes:    optStr(in, "notes"),
			}
			if addr, ok := addressArg(in, "shippingAddress"); ok {
				upd.ShippingAddress = &addr
			}
			return r.Orders.Update(auth.FromContext(p.Context), p.Args["id"].(int), upd)
		},
	}

	f["deleteOrder"] = &gql.Field{
		Type: gql.Boolean,
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			return r.Orders.Delete(auth.FromContext(p.Context), p.Args["id"].(int))
		},
	}

	f["cancelOrder"] = &gql.Field{
		Type: t.order,
		Args: gql.FieldConfigArgument{
			"id":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
			"reason": &gql.ArgumentConfig{Type: gql.String},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			reason, _ := p.Args["reason"].(string)
			return r.Orders.Cancel(auth.FromContext(p.Context), p.Args["id"].(int), reason)
		},
	}

	f["updateOrderStatus"] = &gql.Field{
		Type: t.order,
		Args: gql.FieldConfigArgument{
			"id":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
			"status": &gql.ArgumentConfig{Type: gql.NewNonNull(t.statusEnum)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			status, _ := p.Args["status"].(string)
			return r.Orders.UpdateStatus(auth.FromContext(p.Context), p.Args["id"].(int), status)
		},
	}
}
