package policy

import (
	"testing"

	"ops-portal/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminOnly(t *testing.T) {
	assert.True(t, AdminOnly(Actor{ID: uuid.New(), Role: entity.RoleAdmin}))
	assert.False(t, AdminOnly(Actor{ID: uuid.New(), Role: entity.RoleEmployee}))
}

func TestOwnerOrAdmin(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"admin passes for any row", Actor{ID: uuid.New(), Role: entity.RoleAdmin}, true},
		{"owner passes", Actor{ID: owner, Role: entity.RoleEmployee}, true},
		{"other employee rejected", Actor{ID: uuid.New(), Role: entity.RoleEmployee}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnerOrAdmin(tt.actor, owner))
		})
	}
}

func TestAssignedTo(t *testing.T) {
	assigned := uuid.New()
	other := uuid.New()
	list := []string{assigned.String(), other.String()}

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"assigned employee passes", Actor{ID: assigned, Role: entity.RoleEmployee}, true},
		{"unassigned employee rejected", Actor{ID: uuid.New(), Role: entity.RoleEmployee}, false},
		// The employee camp routes are role-gated; assignment never grants
		// an admin the employee view.
		{"admin rejected even when listed", Actor{ID: assigned, Role: entity.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignedTo(tt.actor, list))
		})
	}

	assert.False(t, AssignedTo(Actor{ID: assigned, Role: entity.RoleEmployee}, nil))
}

func TestOwnerScope(t *testing.T) {
	assert.Nil(t, OwnerScope(Actor{ID: uuid.New(), Role: entity.RoleAdmin}))

	employee := Actor{ID: uuid.New(), Role: entity.RoleEmployee}
	scope := OwnerScope(employee)
	assert.NotNil(t, scope)
	assert.Equal(t, employee.ID, *scope)
}
