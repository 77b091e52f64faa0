// Package actor models the identity making a request: a validated
// (tenant, identity, role) triple resolved by the upstream trust boundary.
// The core receives Actors fully typed and never re-parses a raw claims
// structure; requests lacking a resolvable identity are rejected before
// they reach the domain.
package actor

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not
// created through the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the identity + role pair making a request, scoped to a tenant.
// It is a value object: immutable and safe to copy.
type Actor struct {
	tenantID kernel.TenantID
	id       string
	role     Role

	isConstructed bool
}

// NewActor creates an Actor from the triple supplied by the identity
// resolver. All three parts are required; the role must be a known role.
func NewActor(tenantID kernel.TenantID, id string, role Role) (Actor, error) {
	if err := tenantID.Validate(); err != nil {
		return Actor{}, err
	}
	if id == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor identity")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		tenantID:      tenantID,
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was constructed via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// TenantID returns the tenant the actor belongs to.
func (a Actor) TenantID() kernel.TenantID {
	return a.tenantID
}

// ID returns the actor's identity as resolved by the trust boundary.
func (a Actor) ID() string {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}
