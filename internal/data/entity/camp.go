package entity

import (
	"time"

	"github.com/google/uuid"
)

type CampStatus string

const (
	CampPlanned   CampStatus = "planned"
	CampOngoing   CampStatus = "ongoing"
	CampCompleted CampStatus = "completed"
	CampCancelled CampStatus = "cancelled"
)

// ValidCampStatus reports whether the status is a known lifecycle state
func ValidCampStatus(status string) bool {
	switch CampStatus(status) {
	case CampPlanned, CampOngoing, CampCompleted, CampCancelled:
		return true
	}
	return false
}

// Camp is a scheduled field event. AssignedTo holds user-id strings;
// assignment, not ownership, is what scopes employee access to a camp.
type Camp struct {
	ID          uuid.UUID  `db:"id"`
	CampDate    time.Time  `db:"camp_date"`
	Location    string     `db:"location"`
	LocationLink *string   `db:"location_link"`
	PhoneNumber *string    `db:"phone_number"`
	Status      CampStatus `db:"status"`
	ConductedBy *string    `db:"conducted_by"`
	AssignedTo  []string   `db:"assigned_to"`
	CreatedBy   uuid.UUID  `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	LastUpdated time.Time  `db:"last_updated"`

	// Populated from joins, not columns
	CreatedByName         *string  `db:"-"`
	AssignedEmployeeNames []string `db:"-"`
}
