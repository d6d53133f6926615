package graph

import "github.com/graphql-go/graphql"

// Output object types. Field names are the camelCase spellings clients
// use; values resolve off the records structs by name.

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"offerId":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"quantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"orderId":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"userId":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"orderStatus":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"paymentStatus": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"paymentId":     &graphql.Field{Type: graphql.Int},
		"amount":        &graphql.Field{Type: graphql.NewNonNull(decimalType)},
		"createdAt":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"items": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemType))),
		},
	},
})

var paymentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Payment",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"orderId":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"userId":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"amount":        &graphql.Field{Type: graphql.NewNonNull(decimalType)},
		"currency":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"paymentMethod": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"paymentStatus": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"provider":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"transactionId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var partnerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Partner",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"category":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"address":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lat":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"lng":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"isActive":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var offerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Offer",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"partnerId":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.NewNonNull(decimalType)},
		"currency":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stock":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   &graphql.Field{Type: graphql.DateTime},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fullName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"phone":     &graphql.Field{Type: graphql.String},
		"isActive":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var notificationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Notification",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"channel":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"subject":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"body":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var reviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Review",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"partnerId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"offerId":   &graphql.Field{Type: graphql.Int},
		"rating":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"comment":   &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var ratingSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RatingSummary",
	Fields: graphql.Fields{
		"partnerId":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"averageRating": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"reviewCount":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

// Input object types.

var orderItemInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"offerId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"quantity": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var createOrderInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateOrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"userId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"items": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInputType))),
		},
		"amount": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(decimalType)},
	},
})

var createPartnerInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePartnerInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"category": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"address":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lat":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"lng":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var offerUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OfferUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":       &graphql.InputObjectFieldConfig{Type: decimalType},
		"currency":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"stock":       &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"isActive":    &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var userUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"fullName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isActive": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var ratingInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "RatingInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"partnerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"rating":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"offerId":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"comment":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var signupInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SignupInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"fullName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var loginInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})
