package records

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Input builders turn resolver argument maps into outbound request
// bodies. Keys are renamed to the snake_case form the backends expect,
// and monetary amounts are serialized as decimal strings.
//
// The sparse builders (offer and user updates) copy only the keys that
// are present in the argument map: an absent key stays absent in the
// body, it is never nulled. An empty input therefore produces {}.

// CreateOrderBody builds the POST /orders body.
func CreateOrderBody(input map[string]any) map[string]any {
	body := map[string]any{
		"user_id": input["userId"],
		"amount":  amountText(input["amount"]),
	}

	items := make([]map[string]any, 0)
	if raw, ok := input["items"].([]any); ok {
		for _, el := range raw {
			item, ok := el.(map[string]any)
			if !ok {
				continue
			}
			items = append(items, map[string]any{
				"offer_id": item["offerId"],
				"quantity": item["quantity"],
			})
		}
	}
	body["items"] = items

	return body
}

// CreatePartnerBody builds the POST /partners body.
func CreatePartnerBody(input map[string]any) map[string]any {
	return map[string]any{
		"name":     input["name"],
		"category": input["category"],
		"address":  input["address"],
		"lat":      input["lat"],
		"lng":      input["lng"],
	}
}

// RatingBody builds the POST /reviews body. Offer and comment are
// optional and appear only when given.
func RatingBody(input map[string]any) map[string]any {
	body := map[string]any{
		"partner_id": input["partnerId"],
		"rating":     input["rating"],
	}
	if v, ok := input["offerId"]; ok {
		body["offer_id"] = v
	}
	if v, ok := input["comment"]; ok {
		body["comment"] = v
	}
	return body
}

// SignupBody builds the POST /auth/signup body.
func SignupBody(input map[string]any) map[string]any {
	return map[string]any{
		"email":     input["email"],
		"password":  input["password"],
		"full_name": input["fullName"],
	}
}

// LoginBody builds the POST /auth/login body.
func LoginBody(input map[string]any) map[string]any {
	return map[string]any{
		"email":    input["email"],
		"password": input["password"],
	}
}

// OfferPatchBody builds the sparse PATCH /offers/{id} body.
func OfferPatchBody(input map[string]any) map[string]any {
	body := map[string]any{}
	copyKey(body, input, "title", "title")
	copyKey(body, input, "description", "description")
	if v, ok := input["price"]; ok {
		body["price"] = amountText(v)
	}
	copyKey(body, input, "currency", "currency")
	copyKey(body, input, "stock", "stock")
	copyKey(body, input, "isActive", "is_active")
	return body
}

// UserPatchBody builds the sparse PATCH /users/{id} body.
func UserPatchBody(input map[string]any) map[string]any {
	body := map[string]any{}
	copyKey(body, input, "email", "email")
	copyKey(body, input, "fullName", "full_name")
	copyKey(body, input, "phone", "phone")
	copyKey(body, input, "isActive", "is_active")
	return body
}

func copyKey(dst, src map[string]any, from, to string) {
	if v, ok := src[from]; ok {
		dst[to] = v
	}
}

// amountText renders an amount argument as its exact textual form. The
// Decimal scalar already hands resolvers a decimal value; strings and
// json.Number pass through untouched.
func amountText(v any) string {
	switch a := v.(type) {
	case decimal.Decimal:
		return a.String()
	case json.Number:
		return a.String()
	case string:
		return a
	default:
		return fmt.Sprint(a)
	}
}
