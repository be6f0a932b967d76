// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"craftlink/models"
)

// Sentinel errors surfaced to the scheduling service. Unknown-id operations
// fail loudly instead of silently matching nothing.
var (
	ErrRequestNotFound = errors.New("meeting request not found")
	ErrSlotConflict    = errors.New("slot already booked")
	ErrNoAvailability  = errors.New("contractor has no availability configured")
)

// ScheduleRepository defines data access for contractor availability,
// booked slots and meeting requests. All scheduling state is embedded on the
// contractor's user document.
type ScheduleRepository interface {
	// GetAvailability retrieves a contractor's availability record.
	GetAvailability(contractorID string) (*models.Availability, error)
	// SetAvailability replaces a contractor's availability configuration,
	// preserving already-booked slots.
	SetAvailability(contractorID string, av models.Availability) error
	// GetRequests retrieves all meeting requests (pending and declined).
	GetRequests(contractorID string) ([]models.MeetingRequest, error)
	// GetRequestByID retrieves a single meeting request.
	GetRequestByID(contractorID, requestID string) (*models.MeetingRequest, error)
	// InsertRequest appends a pending meeting request.
	InsertRequest(contractorID string, req models.MeetingRequest) error
	// DeclineRequest flips a pending request to declined in place.
	DeclineRequest(contractorID, requestID string) error
	// UpdateRequestNotes replaces the notes on a meeting request.
	UpdateRequestNotes(contractorID, requestID, notes string) error
	// UpdateSlotNotes replaces the notes on a confirmed booked slot.
	UpdateSlotNotes(contractorID, date, startTime, notes string) error
	// ConfirmRequest atomically removes the pending request and appends the
	// corresponding confirmed slot. Returns ErrSlotConflict when another
	// booking claimed (date, startTime) first.
	ConfirmRequest(ctx context.Context, contractorID string, req models.MeetingRequest) error
}
