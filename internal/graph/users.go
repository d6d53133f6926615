package graph

import (
	"net/url"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

func (r *Resolver) getUsers(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	body, err := r.backends.Users.List(p.Context, "/users", nil, rc.Tenant())
	if err != nil {
		return nil, r.fieldError("getUsers", err)
	}
	if body == nil {
		return []records.User{}, nil
	}

	users, err := records.MapUsers(body)
	if err != nil {
		return nil, r.fieldError("getUsers", backend.NewDecodeError(r.backends.Users.Name(), err))
	}
	return users, nil
}

func (r *Resolver) userByID(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)
	id := stringArg(p, "id")

	body, found, err := r.backends.Users.Get(p.Context, "/users/"+url.PathEscape(id), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("userById", err)
	}
	if !found {
		return nil, nil
	}

	user, err := records.MapUser(body)
	if err != nil {
		return nil, r.fieldError("userById", backend.NewDecodeError(r.backends.Users.Name(), err))
	}
	return user, nil
}

func (r *Resolver) updateUser(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)
	id := stringArg(p, "id")

	body, err := r.backends.Users.Patch(p.Context, "/users/"+url.PathEscape(id),
		records.UserPatchBody(inputArg(p)), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("updateUser", err)
	}

	user, err := records.MapUser(body)
	if err != nil {
		return nil, r.fieldError("updateUser", backend.NewDecodeError(r.backends.Users.Name(), err))
	}
	return user, nil
}
