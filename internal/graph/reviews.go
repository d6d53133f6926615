package graph

import (
	"net/url"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

func (r *Resolver) getReviews(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	query := url.Values{}
	query.Set("partner_id", stringArg(p, "partnerId"))

	body, err := r.backends.Reviews.List(p.Context, "/reviews", query, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("getReviews", err)
	}
	if body == nil {
		return []records.Review{}, nil
	}

	reviews, err := records.MapReviews(body)
	if err != nil {
		return nil, r.fieldError("getReviews", backend.NewDecodeError(r.backends.Reviews.Name(), err))
	}
	return reviews, nil
}

func (r *Resolver) ratingSummary(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)
	partnerID := stringArg(p, "partnerId")

	body, found, err := r.backends.Reviews.Get(p.Context,
		"/reviews/summary/"+url.PathEscape(partnerID), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("ratingSummary", err)
	}
	if !found {
		return nil, nil
	}

	summary, err := records.MapRatingSummary(body)
	if err != nil {
		return nil, r.fieldError("ratingSummary", backend.NewDecodeError(r.backends.Reviews.Name(), err))
	}
	return summary, nil
}

func (r *Resolver) submitRating(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Reviews.Post(p.Context, "/reviews", records.RatingBody(inputArg(p)), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("submitRating", err)
	}

	review, err := records.MapReview(body)
	if err != nil {
		return nil, r.fieldError("submitRating", backend.NewDecodeError(r.backends.Reviews.Name(), err))
	}
	return review, nil
}
