package graph

import (
	"net/url"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

func (r *Resolver) getNotifications(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	query := url.Values{}
	query.Set("user_id", stringArg(p, "userId"))

	body, err := r.backends.Notifications.List(p.Context, "/notifications", query, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("getNotifications", err)
	}
	if body == nil {
		return []records.Notification{}, nil
	}

	notifications, err := records.MapNotifications(body)
	if err != nil {
		return nil, r.fieldError("getNotifications",
			backend.NewDecodeError(r.backends.Notifications.Name(), err))
	}
	return notifications, nil
}
