package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

func (r *Resolver) getOffers(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Offers.List(p.Context, "/offers", nil, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("getOffers", err)
	}
	if body == nil {
		return []records.Offer{}, nil
	}

	offers, err := records.MapOffers(body)
	if err != nil {
		return nil, r.fieldError("getOffers", backend.NewDecodeError(r.backends.Offers.Name(), err))
	}
	return offers, nil
}

func (r *Resolver) offerByID(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)
	id := intArg(p, "id")

	body, found, err := r.backends.Offers.Get(p.Context, fmt.Sprintf("/offers/%d", id), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("offerById", err)
	}
	if !found {
		return nil, nil
	}

	offer, err := records.MapOffer(body)
	if err != nil {
		return nil, r.fieldError("offerById", backend.NewDecodeError(r.backends.Offers.Name(), err))
	}
	return offer, nil
}

func (r *Resolver) updateOffer(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)
	id := intArg(p, "id")

	body, err := r.backends.Offers.Patch(p.Context, fmt.Sprintf("/offers/%d", id),
		records.OfferPatchBody(inputArg(p)), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("updateOffer", err)
	}

	offer, err := records.MapOffer(body)
	if err != nil {
		return nil, r.fieldError("updateOffer", backend.NewDecodeError(r.backends.Offers.Name(), err))
	}
	return offer, nil
}
