package graphql

import (
	gql "github.com/graphql-go/graphql"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/feature/user"
)

func addUserQueries(f gql.Fields, r Resolvers, t *types) {
	f["user"] = &gql.Field{
		Type: t.user,
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			return r.Users.Get(p.Args["id"].(int))
		},
	}

	// me 当前登录用户，未登录时报 UNAUTHENTICATED
	f["me"] = &gql.Field{
		Type: t.user,
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			ident, err := auth.RequireAuth(auth.FromContext(p.Context))
			if err != nil {
				return nil, err
			}
			return r.Users.Get(ident.ID)
		},
	}
}

func addUserMutations(f gql.Fields, r Resolvers, t *types) {
	f["createUser"] = &gql.Field{
		Type: t.user,
		Args: gql.FieldConfigArgument{
			"input": &gql.ArgumentConfig{Type: gql.NewNonNull(t.createUserInput)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			in, _ := argMap(p.Args, "input")
			return r.Users.Register(user.CreateInput{
				Username: strArg(in, "username"),
				Email:    strArg(in, "email"),
				Password: strArg(in, "password"),
			})
		},
	}

	f["login"] = &gql.Field{
		Type: t.authPayload,
		Args: gql.FieldConfigArgument{
			"input": &gql.ArgumentConfig{Type: gql.NewNonNull(t.loginInput)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			in, _ := argMap(p.Args, "input")
			tok, u, err := r.Users.Login(p.Context, strArg(in, "email"), strArg(in, "password"))
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"token": tok, "user": u}, nil
		},
	}

	f["logout"] = &gql.Field{
		Type: gql.Boolean,
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			if err := r.Users.Logout(p.Context, auth.FromContext(p.Context)); err != nil {
				return nil, err
			}
			return true, nil
		},
	}

	f["updateUser"] = &gql.Field{
		Type: t.user,
		Args: gql.FieldConfigArgument{
			"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
			"input": &gql.ArgumentConfig{Type: gql.NewNonNull(t.updateUserInput)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			in, _ := argMap(p.Args, "input")
			return r.Users.Update(auth.FromContext(p.Context), p.Args["id"].(int), user.UpdateInput{
				Username: optStr(in, "username"),
				Email:    optStr(in, "email"),
				Password: optStr(in, "password"),
			})
		},
	}

	f["deleteUser"] = &gql.Field{
		Type: gql.Boolean,
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			return r.Users.Delete(auth.FromContext(p.Context), p.Args["id"].(int))
		},
	}
}
