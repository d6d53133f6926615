package graph

import "github.com/graphql-go/graphql"

// NewSchema builds the executable schema over the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getOrders": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(orderType)),
				Resolve: r.getOrders,
			},
			"getPayments": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(paymentType)),
				Resolve: r.getPayments,
			},
			"getPartners": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(partnerType)),
				Resolve: r.getPartners,
			},
			"getOffers": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(offerType)),
				Resolve: r.getOffers,
			},
			"getUsers": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(userType)),
				Resolve: r.getUsers,
			},
			"getNotifications": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(notificationType)),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.getNotifications,
			},
			"getReviews": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(reviewType)),
				Args: graphql.FieldConfigArgument{
					"partnerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.getReviews,
			},
			"partnerById": &graphql.Field{
				Type: partnerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.partnerByID,
			},
			"offerById": &graphql.Field{
				Type: offerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.offerByID,
			},
			"userById": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.userByID,
			},
			"nearbyPartners": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(partnerType)),
				Args: graphql.FieldConfigArgument{
					"lat":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lng":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"radiusKm": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: r.nearbyPartners,
			},
			"ratingSummary": &graphql.Field{
				Type: ratingSummaryType,
				Args: graphql.FieldConfigArgument{
					"partnerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.ratingSummary,
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.me,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(orderType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createOrderInputType)},
				},
				Resolve: r.createOrder,
			},
			"confirmPayment": &graphql.Field{
				Type: graphql.NewNonNull(paymentType),
				Args: graphql.FieldConfigArgument{
					"paymentId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.confirmPayment,
			},
			"createPartner": &graphql.Field{
				Type: graphql.NewNonNull(partnerType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPartnerInputType)},
				},
				Resolve: r.createPartner,
			},
			"updateOffer": &graphql.Field{
				Type: graphql.NewNonNull(offerType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(offerUpdateInputType)},
				},
				Resolve: r.updateOffer,
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userUpdateInputType)},
				},
				Resolve: r.updateUser,
			},
			"submitRating": &graphql.Field{
				Type: graphql.NewNonNull(reviewType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(ratingInputType)},
				},
				Resolve: r.submitRating,
			},
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInputType)},
				},
				Resolve: r.signup,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInputType)},
				},
				Resolve: r.login,
			},
			"logout": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Resolve: r.logout,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
