package scheduling

import (
	"reflect"
	"testing"
	"time"

	"craftlink/models"
)

func weekdayAvailability() models.Availability {
	return models.Availability{
		WorkingHours:    models.WorkingHours{Start: "09:00", End: "10:00"},
		WorkingDays:     []int{1, 2, 3, 4, 5},
		MeetingDuration: 30,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation(models.DateLayout, s, time.Local)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return day
}

func TestComputeAvailableSlots_WorkingDay(t *testing.T) {
	av := weekdayAvailability()
	tuesday := mustDate(t, "2026-01-06")
	now := mustDate(t, "2026-01-01")

	got := ComputeAvailableSlots(av, tuesday, now)
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestComputeAvailableSlots_ExcludesBooked(t *testing.T) {
	av := weekdayAvailability()
	av.BookedSlots = []models.BookedSlot{
		{Date: "2026-01-06", StartTime: "09:30", EndTime: "10:00", Status: models.SlotStatusConfirmed},
	}
	tuesday := mustDate(t, "2026-01-06")
	now := mustDate(t, "2026-01-01")

	got := ComputeAvailableSlots(av, tuesday, now)
	want := []string{"09:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestComputeAvailableSlots_BookedOtherDateDoesNotExclude(t *testing.T) {
	av := weekdayAvailability()
	av.BookedSlots = []models.BookedSlot{
		{Date: "2026-01-07", StartTime: "09:30", EndTime: "10:00", Status: models.SlotStatusConfirmed},
	}
	tuesday := mustDate(t, "2026-01-06")
	now := mustDate(t, "2026-01-01")

	got := ComputeAvailableSlots(av, tuesday, now)
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestComputeAvailableSlots_NonWorkingDay(t *testing.T) {
	av := weekdayAvailability()
	saturday := mustDate(t, "2026-01-10")
	now := mustDate(t, "2026-01-01")

	got := ComputeAvailableSlots(av, saturday, now)
	if len(got) != 0 {
		t.Fatalf("expected no slots on a non-working day, got %v", got)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestComputeAvailableSlots_SkipsElapsed(t *testing.T) {
	av := weekdayAvailability()
	tuesday := mustDate(t, "2026-01-06")
	now := tuesday.Add(9*time.Hour + 15*time.Minute)

	got := ComputeAvailableSlots(av, tuesday, now)
	want := []string{"09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestComputeAvailableSlots_AllElapsed(t *testing.T) {
	av := weekdayAvailability()
	tuesday := mustDate(t, "2026-01-06")
	now := tuesday.Add(10 * time.Hour)

	got := ComputeAvailableSlots(av, tuesday, now)
	if len(got) != 0 {
		t.Fatalf("expected no slots after the working window, got %v", got)
	}
}

func TestComputeAvailableSlots_AlignedToDuration(t *testing.T) {
	av := models.Availability{
		WorkingHours:    models.WorkingHours{Start: "08:00", End: "11:00"},
		WorkingDays:     []int{2},
		MeetingDuration: 60,
	}
	tuesday := mustDate(t, "2026-01-06")
	now := mustDate(t, "2026-01-01")

	got := ComputeAvailableSlots(av, tuesday, now)
	want := []string{"08:00", "09:00", "10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestComputeAvailableSlots_Deterministic(t *testing.T) {
	av := weekdayAvailability()
	tuesday := mustDate(t, "2026-01-06")
	now := mustDate(t, "2026-01-01")

	first := ComputeAvailableSlots(av, tuesday, now)
	second := ComputeAvailableSlots(av, tuesday, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
}

func TestValidateAvailability_OK(t *testing.T) {
	if err := ValidateAvailability(weekdayAvailability()); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateAvailability_Rejects(t *testing.T) {
	cases := []struct {
		name string
		av   models.Availability
	}{
		{
			name: "start after end",
			av: models.Availability{
				WorkingHours:    models.WorkingHours{Start: "17:00", End: "09:00"},
				WorkingDays:     []int{1},
				MeetingDuration: 30,
			},
		},
		{
			name: "zero duration",
			av: models.Availability{
				WorkingHours:    models.WorkingHours{Start: "09:00", End: "10:00"},
				WorkingDays:     []int{1},
				MeetingDuration: 0,
			},
		},
		{
			name: "duration does not tile window",
			av: models.Availability{
				WorkingHours:    models.WorkingHours{Start: "09:00", End: "10:00"},
				WorkingDays:     []int{1},
				MeetingDuration: 45,
			},
		},
		{
			name: "no working days",
			av: models.Availability{
				WorkingHours:    models.WorkingHours{Start: "09:00", End: "10:00"},
				MeetingDuration: 30,
			},
		},
		{
			name: "weekday out of range",
			av: models.Availability{
				WorkingHours:    models.WorkingHours{Start: "09:00", End: "10:00"},
				WorkingDays:     []int{7},
				MeetingDuration: 30,
			},
		},
		{
			name: "duplicate weekday",
			av: models.Availability{
				WorkingHours:    models.WorkingHours{Start: "09:00", End: "10:00"},
				WorkingDays:     []int{1, 1},
				MeetingDuration: 30,
			},
		},
		{
			name: "malformed start",
			av: models.Availability{
				WorkingHours:    models.WorkingHours{Start: "9am", End: "10:00"},
				WorkingDays:     []int{1},
				MeetingDuration: 30,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAvailability(tc.av)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if ErrCode(err) != CodeInvalidInput {
				t.Fatalf("expected code %q, got %q", CodeInvalidInput, ErrCode(err))
			}
		})
	}
}
