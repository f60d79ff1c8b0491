package graphql

import (
	gql "github.com/graphql-go/graphql"

	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/store"
)

// types 程序化构建的 schema 类型集合（不加载 SDL）
type types struct {
	user        *gql.Object
	listing     *gql.Object
	order       *gql.Object
	orderPage   *gql.Object
	authPayload *gql.Object

	conditionEnum *gql.Enum
	statusEnum    *gql.Enum

	addressInput        *gql.InputObject
	createUserInput     *gql.InputObject
	updateUserInput     *gql.InputObject
	loginInput          *gql.InputObject
	createListingInput  *gql.InputObject
	updateListingInput  *gql.InputObject
	listingFilterInput  *gql.InputObject
	createOrderInput    *gql.InputObject
	updateOrderInput    *gql.InputObject
	orderFilterInput    *gql.InputObject
	paginationInput     *gql.InputObject
}

func buildTypes(st *store.Store) *types {
	t := &types{}

	t.conditionEnum = gql.NewEnum(gql.EnumConfig{
		Name: "ListingCondition",
		Values: gql.EnumValueConfigMap{
			"NEW":       &gql.EnumValueConfig{Value: domain.ConditionNew},
			"LIKE_NEW":  &gql.EnumValueConfig{Value: domain.ConditionLikeNew},
			"GOOD":      &gql.EnumValueConfig{Value: domain.ConditionGood},
			"USED":      &gql.EnumValueConfig{Value: domain.ConditionUsed},
			"FOR_PARTS": &gql.EnumValueConfig{Value: domain.ConditionForParts},
		},
	})

	t.statusEnum = gql.NewEnum(gql.EnumConfig{
		Name: "OrderStatus",
		Values: gql.EnumValueConfigMap{
			"PENDING":   &gql.EnumValueConfig{Value: domain.StatusPending},
			"CONFIRMED": &gql.EnumValueConfig{Value: domain.StatusConfirmed},
			"SHIPPED":   &gql.EnumValueConfig{Value: domain.StatusShipped},
			"DELIVERED": &gql.EnumValueConfig{Value: domain.StatusDelivered},
			"CANCELLED": &gql.EnumValueConfig{Value: domain.StatusCancelled},
		},
	})

	// User 类型没有 password 字段，散列值不可能进响应
	t.user = gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"username":  &gql.Field{Type: gql.NewNonNull(gql.String)},
			"email":     &gql.Field{Type: gql.NewNonNull(gql.String)},
			"createdAt": &gql.Field{Type: gql.DateTime},
			"updatedAt": &gql.Field{Type: gql.DateTime},
		},
	})

	t.listing = gql.NewObject(gql.ObjectConfig{
		Name: "Listing",
		Fields: gql.Fields{
			"id":          &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"title":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"description": &gql.Field{Type: gql.String},
			"price": &gql.Field{
				Type: gql.NewNonNull(gql.Float),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					l, _ := p.Source.(domain.Listing)
					return l.Price.InexactFloat64(), nil
				},
			},
			"category":  &gql.Field{Type: gql.String},
			"condition": &gql.Field{Type: t.conditionEnum},
			"location":  &gql.Field{Type: gql.String},
			"images":    &gql.Field{Type: gql.NewList(gql.String)},
			"userId":    &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"user": &gql.Field{
				Type: t.user,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					l, _ := p.Source.(domain.Listing)
					if u, ok := st.User(l.UserID); ok {
						return u, nil
					}
					return nil, nil // 卖家已注销
				},
			},
			"createdAt": &gql.Field{Type: gql.DateTime},
			"updatedAt": &gql.Field{Type: gql.DateTime},
		},
	})

	address := gql.NewObject(gql.ObjectConfig{
		Name: "ShippingAddress",
		Fields: gql.Fields{
			"street":  &gql.Field{Type: gql.String},
			"city":    &gql.Field{Type: gql.String},
			"state":   &gql.Field{Type: gql.String},
			"zip":     &gql.Field{Type: gql.String},
			"country": &gql.Field{Type: gql.String},
		},
	})

	t.order = gql.NewObject(gql.ObjectConfig{
		Name: "Order",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"userId":    &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"listingId": &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"quantity":  &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"totalPrice": &gql.Field{
				Type: gql.NewNonNull(gql.Float),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					o, _ := p.Source.(domain.Order)
					return o.TotalPrice.InexactFloat64(), nil
				},
			},
			"status":          &gql.Field{Type: gql.NewNonNull(t.statusEnum)},
			"shippingAddress": &gql.Field{Type: address},
			"notes":           &gql.Field{Type: gql.String},
			"cancelReason":    &gql.Field{Type: gql.String},
			"cancelledAt":     &gql.Field{Type: gql.DateTime},
			"listing": &gql.Field{
				Type: t.listing,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					o, _ := p.Source.(domain.Order)
					if l, ok := st.Listing(o.ListingID); ok {
						return l, nil
					}
					return nil, nil // listing 已下架，订单里的冻结价仍有效
				},
			},
			"user": &gql.Field{
				Type: t.user,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					o, _ := p.Source.(domain.Order)
					if u, ok := st.User(o.UserID); ok {
						return u, nil
					}
					return nil, nil
				},
			},
			"createdAt": &gql.Field{Type: gql.DateTime},
			"updatedAt": &gql.Field{Type: gql.DateTime},
		},
	})

	t.orderPage = gql.NewObject(gql.ObjectConfig{
		Name: "OrderPage",
		Fields: gql.Fields{
			"orders":          &gql.Field{Type: gql.NewList(t.order)},
			"total":           &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"pages":           &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"currentPage":     &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"hasNextPage":     &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"hasPreviousPage": &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		},
	})

	t.authPayload = gql.NewObject(gql.ObjectConfig{
		Name: "AuthPayload",
		Fields: gql.Fields{
			"token": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"user":  &gql.Field{Type: gql.NewNonNull(t.user)},
		},
	})

	t.addressInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "ShippingAddressInput",
		Fields: gql.InputObjectConfigFieldMap{
			"street":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"city":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"state":   &gql.InputObjectFieldConfig{Type: gql.String},
			"zip":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"country": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	t.createUserInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: gql.InputObjectConfigFieldMap{
			"username": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	t.updateUserInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: gql.InputObjectConfigFieldMap{
			"username": &gql.InputObjectFieldConfig{Type: gql.String},
			"email":    &gql.InputObjectFieldConfig{Type: gql.String},
			"password": &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	t.loginInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "LoginInput",
		Fields: gql.InputObjectConfigFieldMap{
			"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	t.createListingInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "CreateListingInput",
		Fields: gql.InputObjectConfigFieldMap{
			"title":       &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"description": &gql.InputObjectFieldConfig{Type: gql.String},
			"price":       &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Float)},
			"category":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"condition":   &gql.InputObjectFieldConfig{Type: gql.NewNonNull(t.conditionEnum)},
			"location":    &gql.InputObjectFieldConfig{Type: gql.String},
			"images":      &gql.InputObjectFieldConfig{Type: gql.NewList(gql.String)},
		},
	})

	t.updateListingInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "UpdateListingInput",
		Fields: gql.InputObjectConfigFieldMap{
			"title":       &gql.InputObjectFieldConfig{Type: gql.String},
			"description": &gql.InputObjectFieldConfig{Type: gql.String},
			"price":       &gql.InputObjectFieldConfig{Type: gql.Float},
			"category":    &gql.InputObjectFieldConfig{Type: gql.String},
			"condition":   &gql.InputObjectFieldConfig{Type: t.conditionEnum},
			"location":    &gql.InputObjectFieldConfig{Type: gql.String},
			"images":      &gql.InputObjectFieldConfig{Type: gql.NewList(gql.String)},
		},
	})

	t.listingFilterInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "ListingFilterInput",
		Fields: gql.InputObjectConfigFieldMap{
			"search":    &gql.InputObjectFieldConfig{Type: gql.String},
			"minPrice":  &gql.InputObjectFieldConfig{Type: gql.Float},
			"maxPrice":  &gql.InputObjectFieldConfig{Type: gql.Float},
			"category":  &gql.InputObjectFieldConfig{Type: gql.String},
			"condition": &gql.InputObjectFieldConfig{Type: t.conditionEnum},
		},
	})

	t.createOrderInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "CreateOrderInput",
		Fields: gql.InputObjectConfigFieldMap{
			"listingId":       &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Int)},
			"quantity":        &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Int)},
			"shippingAddress": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(t.addressInput)},
			"notes":           &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	t.updateOrderInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "UpdateOrderInput",
		Fields: gql.InputObjectConfigFieldMap{
			"quantity":        &gql.InputObjectFieldConfig{Type: gql.Int},
			"shippingAddress": &gql.InputObjectFieldConfig{Type: t.addressInput},
			"notes":           &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	t.orderFilterInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "OrderFilterInput",
		Fields: gql.InputObjectConfigFieldMap{
			"userId": &gql.InputObjectFieldConfig{Type: gql.Int},
			"status": &gql.InputObjectFieldConfig{Type: t.statusEnum},
		},
	})

	t.paginationInput = gql.NewInputObject(gql.InputObjectConfig{
		Name: "PaginationInput",
		Fields: gql.InputObjectConfigFieldMap{
			"page":  &gql.InputObjectFieldConfig{Type: gql.Int, DefaultValue: 1},
			"limit": &gql.InputObjectFieldConfig{Type: gql.Int, DefaultValue: 10},
		},
	})

	return t
}
