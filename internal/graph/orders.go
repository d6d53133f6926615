package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

func (r *Resolver) getOrders(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Orders.List(p.Context, "/orders", nil, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("getOrders", err)
	}
	if body == nil {
		return []records.Order{}, nil
	}

	orders, err := records.MapOrders(body)
	if err != nil {
		return nil, r.fieldError("getOrders", backend.NewDecodeError(r.backends.Orders.Name(), err))
	}
	return orders, nil
}

func (r *Resolver) createOrder(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Orders.Post(p.Context, "/orders", records.CreateOrderBody(inputArg(p)), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("createOrder", err)
	}

	order, err := records.MapOrder(body)
	if err != nil {
		return nil, r.fieldError("createOrder", backend.NewDecodeError(r.backends.Orders.Name(), err))
	}
	return order, nil
}
