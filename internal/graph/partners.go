package graph

import (
	"net/url"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

func (r *Resolver) getPartners(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Partners.List(p.Context, "/partners", nil, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("getPartners", err)
	}
	if body == nil {
		return []records.Partner{}, nil
	}

	partners, err := records.MapPartners(body)
	if err != nil {
		return nil, r.fieldError("getPartners", backend.NewDecodeError(r.backends.Partners.Name(), err))
	}
	return partners, nil
}

func (r *Resolver) partnerByID(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)
	id := stringArg(p, "id")

	body, found, err := r.backends.Partners.Get(p.Context, "/partners/"+url.PathEscape(id), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("partnerById", err)
	}
	if !found {
		return nil, nil
	}

	partner, err := records.MapPartner(body)
	if err != nil {
		return nil, r.fieldError("partnerById", backend.NewDecodeError(r.backends.Partners.Name(), err))
	}
	return partner, nil
}

func (r *Resolver) nearbyPartners(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	// Pure pass-through: the partner service does the distance math.
	query := url.Values{}
	query.Set("lat", formatFloat(floatArg(p, "lat")))
	query.Set("lng", formatFloat(floatArg(p, "lng")))
	query.Set("radius_km", formatFloat(floatArg(p, "radiusKm")))

	body, err := r.backends.Partners.List(p.Context, "/partners/nearby", query, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("nearbyPartners", err)
	}
	if body == nil {
		return []records.Partner{}, nil
	}

	partners, err := records.MapPartners(body)
	if err != nil {
		return nil, r.fieldError("nearbyPartners", backend.NewDecodeError(r.backends.Partners.Name(), err))
	}
	return partners, nil
}

func (r *Resolver) createPartner(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Partners.Post(p.Context, "/partners", records.CreatePartnerBody(inputArg(p)), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("createPartner", err)
	}

	partner, err := records.MapPartner(body)
	if err != nil {
		return nil, r.fieldError("createPartner", backend.NewDecodeError(r.backends.Partners.Name(), err))
	}
	return partner, nil
}
