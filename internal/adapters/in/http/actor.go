package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
)

// Identity headers set by the upstream gateway after authentication.
// The service trusts them as-is; token verification is out of scope here.
const (
	HeaderTenantID = "X-Tenant-Id"
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var errIdentityRequired = echo.NewHTTPError(http.StatusUnauthorized,
	"identity headers are required")

// actorFromRequest resolves the calling actor from the identity headers.
// A missing header yields 401; a malformed value yields 400.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	header := ctx.Request().Header

	tenantValue := header.Get(HeaderTenantID)
	userID := header.Get(HeaderUserID)
	roleValue := header.Get(HeaderUserRole)
	if tenantValue == "" || userID == "" || roleValue == "" {
		return actor.Actor{}, errIdentityRequired
	}

	tenantID, err := kernel.NewTenantID(tenantValue)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(roleValue)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(tenantID, userID, role)
}
