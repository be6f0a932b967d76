package scheduling

import "fmt"

// ScheduleError carries a stable code so handlers can map scheduling
// failures onto HTTP statuses.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes.
const (
	CodeInvalidInput    = "invalidInput"
	CodeSlotUnavailable = "slotUnavailable"
	CodeRequestNotFound = "requestNotFound"
	CodeSlotTaken       = "slotTaken"
	CodeNoAvailability  = "noAvailability"
)

func newInvalidInputError(format string, args ...interface{}) error {
	return &ScheduleError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewSlotUnavailableError reports a requested slot that is not in the
// currently available set (stale UI, already booked, or elapsed).
func NewSlotUnavailableError(date, startTime string) error {
	return &ScheduleError{
		Code:    CodeSlotUnavailable,
		Message: fmt.Sprintf("slot %s %s is no longer available", date, startTime),
	}
}

// NewRequestNotFoundError reports an accept/decline against an unknown or
// already-resolved request id.
func NewRequestNotFoundError(requestID string) error {
	return &ScheduleError{
		Code:    CodeRequestNotFound,
		Message: fmt.Sprintf("meeting request %s not found or already resolved", requestID),
	}
}

// NewSlotTakenError reports an acceptance that lost the race for a slot.
func NewSlotTakenError(date, startTime string) error {
	return &ScheduleError{
		Code:    CodeSlotTaken,
		Message: fmt.Sprintf("slot %s %s was confirmed for another request", date, startTime),
	}
}

// ErrCode extracts the schedule error code, "" for foreign errors.
func ErrCode(err error) string {
	if se, ok := err.(*ScheduleError); ok {
		return se.Code
	}
	return ""
}
