package scheduling

import (
	"fmt"
	"time"

	"craftlink/models"
)

// parseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse(models.TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes from midnight back to "HH:MM".
func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// slotStart anchors a minutes-from-midnight offset on the given calendar day.
func slotStart(date time.Time, minutes int) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(minutes) * time.Minute)
}

// ComputeAvailableSlots returns the bookable start times ("HH:MM", ascending)
// for a contractor's availability on the given date. It is a pure function of
// its inputs: the same availability, date and clock always yield the same
// ordered result.
//
// A start time T is offered iff the date's weekday is a working day, T lies
// within the working window at a meetingDuration-aligned offset, no booked
// slot occupies (date, T), and T has not already elapsed relative to now.
func ComputeAvailableSlots(av models.Availability, date time.Time, now time.Time) []string {
	slots := []string{}

	if !av.HasDay(date.Weekday()) {
		return slots
	}
	if av.MeetingDuration <= 0 {
		return slots
	}

	start, err := parseClock(av.WorkingHours.Start)
	if err != nil {
		return slots
	}
	end, err := parseClock(av.WorkingHours.End)
	if err != nil {
		return slots
	}

	dateStr := date.Format(models.DateLayout)
	for m := start; m < end; m += av.MeetingDuration {
		startTime := formatClock(m)
		if av.SlotBooked(dateStr, startTime) {
			continue
		}
		if slotStart(date, m).Before(now) {
			continue
		}
		slots = append(slots, startTime)
	}
	return slots
}

// ValidateAvailability checks a contractor's availability configuration at
// the boundary: a well-formed window, a positive duration that tiles it, and
// weekday values in 0..6.
func ValidateAvailability(av models.Availability) error {
	start, err := parseClock(av.WorkingHours.Start)
	if err != nil {
		return newInvalidInputError("working hours start: %v", err)
	}
	end, err := parseClock(av.WorkingHours.End)
	if err != nil {
		return newInvalidInputError("working hours end: %v", err)
	}
	if start >= end {
		return newInvalidInputError("working hours start %s must precede end %s", av.WorkingHours.Start, av.WorkingHours.End)
	}
	if av.MeetingDuration <= 0 {
		return newInvalidInputError("meeting duration must be positive, got %d", av.MeetingDuration)
	}
	if (end-start)%av.MeetingDuration != 0 {
		return newInvalidInputError("meeting duration %d does not tile the %s-%s window",
			av.MeetingDuration, av.WorkingHours.Start, av.WorkingHours.End)
	}
	if len(av.WorkingDays) == 0 {
		return newInvalidInputError("at least one working day is required")
	}
	seen := map[int]bool{}
	for _, d := range av.WorkingDays {
		if d < 0 || d > 6 {
			return newInvalidInputError("working day %d out of range 0..6", d)
		}
		if seen[d] {
			return newInvalidInputError("working day %d listed twice", d)
		}
		seen[d] = true
	}
	return nil
}
