package graphql

import (
	gql "github.com/graphql-go/graphql"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/domain"
	"go-graphql-marketplace/internal/feature/listing"
)

func addListingQueries(f gql.Fields, r Resolvers, t *types) {
	f["listing"] = &gql.Field{
		Type: t.listing,
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			return r.Listings.Get(p.Args["id"].(int))
		},
	}

	f["listings"] = &gql.Field{
		Type: gql.NewList(t.listing),
		Args: gql.FieldConfigArgument{
			"filter": &gql.ArgumentConfig{Type: t.listingFilterInput},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			filter := domain.ListingFilter{}
			if fm, ok := argMap(p.Args, "filter"); ok {
				filter = domain.ListingFilter{
					Search:    optStr(fm, "search"),
					MinPrice:  optDecimal(fm, "minPrice"),
					MaxPrice:  optDecimal(fm, "maxPrice"),
					Category:  optStr(fm, "category"),
					Condition: optStr(fm, "condition"),
				}
			}
			return r.Listings.List(filter), nil
		},
	}
}

func addListingMutations(f gql.Fields, r Resolvers, t *types) {
	f["createListing"] = &gql.Field{
		Type: t.listing,
		Args: gql.FieldConfigArgument{
			"input": &gql.ArgumentConfig{Type: gql.NewNonNull(t.createListingInput)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			in, _ := argMap(p.Args, "input")
			return r.Listings.Create(auth.FromContext(p.Context), listing.CreateInput{
				Title:       strArg(in, "title"),
				Description: strArg(in, "description"),
				Price:       decimalArg(in, "price"),
				Category:    strArg(in, "category"),
				Condition:   strArg(in, "condition"),
				Location:    strArg(in, "location"),
				Images:      strSliceArg(in, "images"),
			})
		},
	}

	f["updateListing"] = &gql.Field{
		Type: t.listing,
		Args: gql.FieldConfigArgument{
			"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
			"input": &gql.ArgumentConfig{Type: gql.NewNonNull(t.updateListingInput)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			in, _ := argMap(p.Args, "input")
			upd := listing.UpdateInput{
				Title:       optStr(in, "title"),
				Description: optStr(in, "description"),
				Price:       optDecimal(in, "price"),
				Category:    optStr(in, "category"),
				Condition:   optStr(in, "condition"),
				Location:    optStr(in, "location"),
			}
			if imgs := strSliceArg(in, "images"); in["images"] != nil {
				upd.Images = &imgs
			}
			return r.Listings.Update(auth.FromContext(p.Context), p.Args["id"].(int), upd)
		},
	}

	f["deleteListing"] = &gql.Field{
		Type: gql.Boolean,
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			return r.Listings.Delete(auth.FromContext(p.Context), p.Args["id"].(int))
		},
	}
}
