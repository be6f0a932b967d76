package scheduling

import (
	"context"
	"time"

	"craftlink/models"
)

// ScheduleService drives contractor availability and the meeting-request
// lifecycle. All booking flows go through pending -> accepted; direct booking
// is a shortcut that auto-accepts its own request.
type ScheduleService interface {
	// SetAvailability configures a contractor's recurring weekly schedule.
	SetAvailability(contractorID string, av models.Availability) error
	// GetAvailability retrieves a contractor's availability record.
	GetAvailability(contractorID string) (*models.Availability, error)
	// AvailableSlots computes the bookable start times for a date ("2006-01-02").
	AvailableSlots(contractorID, date string) ([]string, error)
	// Propose creates a pending meeting request for an available slot.
	Propose(contractorID, realtorID, date, startTime, notes string) (*models.MeetingRequest, error)
	// Accept confirms a pending request, converting it into a booked slot.
	Accept(ctx context.Context, contractorID, requestID string) (*models.BookedSlot, error)
	// Decline marks a pending request declined; it stays visible for history.
	Decline(contractorID, requestID string) error
	// DirectBook proposes and immediately accepts in one call.
	DirectBook(ctx context.Context, contractorID, realtorID, date, startTime, notes string) (*models.BookedSlot, error)
	// Requests lists a contractor's meeting requests, pending and declined.
	Requests(contractorID string) ([]models.MeetingRequest, error)
	// UpdateRequestNotes replaces the notes on a meeting request.
	UpdateRequestNotes(contractorID, requestID, notes string) error
	// UpdateSlotNotes replaces the notes on a confirmed slot.
	UpdateSlotNotes(contractorID, date, startTime, notes string) error
}

// ReminderScheduler enqueues a reminder ahead of a confirmed meeting.
type ReminderScheduler interface {
	ScheduleMeetingReminder(payload models.ReminderPayload, meetingStart time.Time) error
}
