package services

import (
	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/order"
)

// TransitionRoles maps each reachable order status to the staff roles
// allowed to trigger the transition, in addition to Owner/Admin, who may
// trigger every transition. The allowed-role set per transition is a
// configuration decision, not a hidden rule: callers may supply their own
// table, and the default is fully covered by tests.
type TransitionRoles map[order.Status][]actor.Role

// DefaultTransitionRoles returns the standard role table:
//   - CANCELLED: the order's creator (ownership check, any role) — the
//     creator rule lives in the policy itself, so no staff role is listed
//   - COOKING, SENDED: kitchen staff
//   - DELIVERED: delivery staff
func DefaultTransitionRoles() TransitionRoles {
	return TransitionRoles{
		order.Cancelled: {},
		order.Cooking:   {actor.Kitchen},
		order.Sended:    {actor.Kitchen},
		order.Delivered: {actor.Delivery},
	}
}

// AccessPolicy is a pure domain service deciding which actors may read
// orders and trigger status transitions. It has no side effects and never
// touches the store: callers fetch the order first and consult the policy
// on the in-memory aggregate.
//
// Example:
//
//	policy := services.NewAccessPolicy()
//	if !policy.CanTransition(requester, ord, order.Cooking) {
//	    return errs.NewAccessForbiddenError("update order status")
//	}
type AccessPolicy struct {
	transitionRoles TransitionRoles
}

// NewAccessPolicy creates a policy with the default transition role table.
func NewAccessPolicy() AccessPolicy {
	return NewAccessPolicyWithRoles(DefaultTransitionRoles())
}

// NewAccessPolicyWithRoles creates a policy with an explicit role table.
func NewAccessPolicyWithRoles(roles TransitionRoles) AccessPolicy {
	return AccessPolicy{transitionRoles: roles}
}

// CanTransition reports whether the actor may move the order into the
// desired status. It implements the actor constraint only; the workflow
// precondition on the current status is the state machine's concern.
//
// Rules:
//   - Owner/Admin may trigger every transition within their tenant
//   - CANCELLED is additionally allowed for the order's creator
//   - other transitions are allowed for the roles configured per status
//   - actors from another tenant are always denied
func (p AccessPolicy) CanTransition(a actor.Actor, o *order.Order, desired order.Status) bool {
	if a.Validate() != nil || o.Validate() != nil {
		return false
	}
	if !a.TenantID().IsEqual(o.TenantID()) {
		return false
	}
	if a.Role().IsPrivileged() {
		return true
	}

	if desired == order.Cancelled {
		return a.ID() == o.CreatedBy()
	}

	for _, role := range p.transitionRoles[desired] {
		if a.Role() == role {
			return true
		}
	}
	return false
}

// CanRead reports whether the actor may see the order. Owner/Admin see all
// orders in their tenant; every other role, staff included, sees only
// orders they created. Staff act on specific orders through the transition
// path, which applies CanTransition instead. Cross-tenant reads are always
// denied.
func (p AccessPolicy) CanRead(a actor.Actor, o *order.Order) bool {
	if a.Validate() != nil || o.Validate() != nil {
		return false
	}
	if !a.TenantID().IsEqual(o.TenantID()) {
		return false
	}
	if a.Role().IsPrivileged() {
		return true
	}
	return a.ID() == o.CreatedBy()
}

// ReadsAllTenantOrders reports whether listings for the actor cover the
// whole tenant partition. Only Owner/Admin do; for everyone else listings
// are filtered to records the actor created.
func (p AccessPolicy) ReadsAllTenantOrders(a actor.Actor) bool {
	return a.Role().IsPrivileged()
}

// CanManageCatalog reports whether the actor may create kitchens and edit
// the menu. Only Owner/Admin hold catalog management rights.
func (p AccessPolicy) CanManageCatalog(a actor.Actor) bool {
	return a.Validate() == nil && a.Role().IsPrivileged()
}
