package models

import "time"

// Date and wall-clock formats used across the scheduling subsystem.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Meeting request statuses.
const (
	MeetingStatusPending  = "pending"
	MeetingStatusAccepted = "accepted"
	MeetingStatusDeclined = "declined"
	SlotStatusConfirmed   = "confirmed"
)

// WorkingHours is a daily wall-clock window in "HH:MM".
type WorkingHours struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Availability is a contractor's recurring weekly bookable schedule.
type Availability struct {
	WorkingHours    WorkingHours `bson:"workingHours" json:"workingHours"`
	WorkingDays     []int        `bson:"workingDays" json:"workingDays"` // 0=Sunday .. 6=Saturday
	MeetingDuration int          `bson:"meetingDuration" json:"meetingDuration"`
	BookedSlots     []BookedSlot `bson:"bookedSlots" json:"bookedSlots"`
}

// BookedSlot is a confirmed, occupied slot on a contractor's calendar.
// Unique per contractor on (Date, StartTime). Immutable once confirmed
// except for Notes.
type BookedSlot struct {
	Date      string `bson:"date" json:"date"` // "2006-01-02"
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	RealtorID string `bson:"realtorId" json:"realtorId"`
	Status    string `bson:"status" json:"status"` // always "confirmed"
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// MeetingRequest is a proposed, not-yet-confirmed meeting awaiting a
// contractor decision. Declined requests stay on the document for history.
type MeetingRequest struct {
	ID        string    `bson:"id" json:"id"`
	RealtorID string    `bson:"realtorId" json:"realtorId"`
	Date      string    `bson:"date" json:"date"`
	StartTime string    `bson:"startTime" json:"startTime"`
	EndTime   string    `bson:"endTime" json:"endTime"`
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// HasDay reports whether the given weekday is a working day.
func (a Availability) HasDay(day time.Weekday) bool {
	for _, d := range a.WorkingDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// SlotBooked reports whether a confirmed slot occupies (date, startTime).
func (a Availability) SlotBooked(date, startTime string) bool {
	for _, b := range a.BookedSlots {
		if b.Date == date && b.StartTime == startTime {
			return true
		}
	}
	return false
}
