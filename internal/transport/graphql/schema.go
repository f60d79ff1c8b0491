// Package graphql 程序化组装 schema 并挂到 HTTP handler 上。
// 每个 resolver 都是同一个形状：取身份 → 调 feature 服务 → 返回实体或业务错误，
// 业务错误通过 extensions.code 透出。
package graphql

import (
	"net/http"

	gql "github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"

	"go-graphql-marketplace/internal/feature/listing"
	"go-graphql-marketplace/internal/feature/order"
	"go-graphql-marketplace/internal/feature/user"
	"go-graphql-marketplace/internal/store"
)

type Resolvers struct {
	Users    *user.Service
	Listings *listing.Service
	Orders   *order.Service
	Store    *store.Store
}

func New(r Resolvers) (gql.Schema, error) {
	t := buildTypes(r.Store)

	query := gql.NewObject(gql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields(r, t),
	})
	mutation := gql.NewObject(gql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(r, t),
	})

	return gql.NewSchema(gql.SchemaConfig{Query: query, Mutation: mutation})
}

func queryFields(r Resolvers, t *types) gql.Fields {
	f := gql.Fields{}
	addUserQueries(f, r, t)
	addListingQueries(f, r, t)
	addOrderQueries(f, r, t)
	return f
}

func mutationFields(r Resolvers, t *types) gql.Fields {
	f := gql.Fields{}
	addUserMutations(f, r, t)
	addListingMutations(f, r, t)
	addOrderMutations(f, r, t)
	return f
}

// NewHandler GET 带 GraphiQL，POST 执行；身份已由 gin 中间件放进 request context
func NewHandler(schema gql.Schema, graphiql bool) http.Handler {
	return gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
}
