// Package policy holds the three scoping rules applied across all
// data-access endpoints. Services consult these predicates to pick the
// scoped query path; repositories re-apply the same predicate inside the
// final UPDATE/DELETE WHERE clause so a check cannot race a mutation.
package policy

import (
	"github.com/google/uuid"

	"ops-portal/internal/data/entity"
)

// Actor is the authenticated requester as seen by the policy layer
type Actor struct {
	ID   uuid.UUID
	Role entity.UserRole
}

// AdminOnly: camps CRUD, employee management, all-customers listings
func AdminOnly(actor Actor) bool {
	return actor.Role == entity.RoleAdmin
}

// OwnerOrAdmin: customers, cards and claims. Admins act on any row;
// everyone else only on rows they created.
func OwnerOrAdmin(actor Actor, ownerID uuid.UUID) bool {
	if actor.Role == entity.RoleAdmin {
		return true
	}
	return actor.ID == ownerID
}

// AssignedTo: employee camp views and status transitions. Camps are
// assigned to a list of employees rather than owned by one, and the
// employee-facing routes are employee-only, so admins do not pass here.
func AssignedTo(actor Actor, assignedTo []string) bool {
	if actor.Role != entity.RoleEmployee {
		return false
	}
	id := actor.ID.String()
	for _, assigned := range assignedTo {
		if assigned == id {
			return true
		}
	}
	return false
}

// OwnerScope returns the created_by filter for owner-or-admin queries:
// nil for admins (no filter), the actor's id otherwise.
func OwnerScope(actor Actor) *uuid.UUID {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	id := actor.ID
	return &id
}
