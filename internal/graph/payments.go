package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

func (r *Resolver) getPayments(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Payments.List(p.Context, "/payments", nil, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("getPayments", err)
	}
	if body == nil {
		return []records.Payment{}, nil
	}

	payments, err := records.MapPayments(body)
	if err != nil {
		return nil, r.fieldError("getPayments", backend.NewDecodeError(r.backends.Payments.Name(), err))
	}
	return payments, nil
}

func (r *Resolver) confirmPayment(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)
	id := intArg(p, "paymentId")

	body, err := r.backends.Payments.Post(p.Context, fmt.Sprintf("/payments/%d/confirm", id), nil, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("confirmPayment", err)
	}

	payment, err := records.MapPayment(body)
	if err != nil {
		return nil, r.fieldError("confirmPayment", backend.NewDecodeError(r.backends.Payments.Name(), err))
	}
	return payment, nil
}
