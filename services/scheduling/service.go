package scheduling

import (
	"context"
	"errors"
	"time"

	scheduleRepo "craftlink/database/repository/schedule"
	"craftlink/models"
	"craftlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultScheduleService is the production scheduling engine. Now is the
// injected clock; tests substitute a fixed one.
type DefaultScheduleService struct {
	Repo      scheduleRepo.ScheduleRepository
	Reminders ReminderScheduler
	Now       func() time.Time
}

func (s *DefaultScheduleService) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SetAvailability validates and stores a contractor's weekly schedule.
func (s *DefaultScheduleService) SetAvailability(contractorID string, av models.Availability) error {
	if err := ValidateAvailability(av); err != nil {
		return err
	}
	return s.Repo.SetAvailability(contractorID, av)
}

// GetAvailability retrieves a contractor's availability record.
func (s *DefaultScheduleService) GetAvailability(contractorID string) (*models.Availability, error) {
	return s.Repo.GetAvailability(contractorID)
}

// AvailableSlots computes the bookable start times for the given date.
func (s *DefaultScheduleService) AvailableSlots(contractorID, date string) ([]string, error) {
	day, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return nil, newInvalidInputError("invalid date %q, want YYYY-MM-DD", date)
	}

	av, err := s.Repo.GetAvailability(contractorID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNoAvailability) {
			return nil, &ScheduleError{Code: CodeNoAvailability, Message: "contractor has not configured availability"}
		}
		return nil, err
	}

	return ComputeAvailableSlots(*av, day, s.clock()), nil
}

// Propose creates a pending meeting request for one of the currently
// available slots. Two realtors may hold pending requests for the same slot;
// the first acceptance wins and the loser is rejected at accept time.
func (s *DefaultScheduleService) Propose(contractorID, realtorID, date, startTime, notes string) (*models.MeetingRequest, error) {
	req, err := s.buildRequest(contractorID, realtorID, date, startTime, notes)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.InsertRequest(contractorID, *req); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("meeting proposed",
		zap.String("contractorID", contractorID),
		zap.String("realtorID", realtorID),
		zap.String("date", date),
		zap.String("startTime", startTime))
	return req, nil
}

// buildRequest validates the proposal inputs against the generator's current
// available set and derives the end time from the meeting duration.
func (s *DefaultScheduleService) buildRequest(contractorID, realtorID, date, startTime, notes string) (*models.MeetingRequest, error) {
	if _, err := time.ParseInLocation(models.DateLayout, date, time.Local); err != nil {
		return nil, newInvalidInputError("invalid date %q, want YYYY-MM-DD", date)
	}
	startMin, err := parseClock(startTime)
	if err != nil {
		return nil, newInvalidInputError("invalid start time %q, want HH:MM", startTime)
	}

	available, err := s.AvailableSlots(contractorID, date)
	if err != nil {
		return nil, err
	}
	found := false
	for _, slot := range available {
		if slot == startTime {
			found = true
			break
		}
	}
	if !found {
		return nil, NewSlotUnavailableError(date, startTime)
	}

	av, err := s.Repo.GetAvailability(contractorID)
	if err != nil {
		return nil, err
	}

	return &models.MeetingRequest{
		ID:        uuid.New().String(),
		RealtorID: realtorID,
		Date:      date,
		StartTime: startTime,
		EndTime:   formatClock(startMin + av.MeetingDuration),
		Status:    models.MeetingStatusPending,
		Notes:     notes,
		CreatedAt: s.clock(),
	}, nil
}

// Accept confirms a pending request. The removal of the request and the
// insertion of the booked slot happen in one transaction; losing the race
// for the slot surfaces as a slotTaken error and leaves the request pending.
func (s *DefaultScheduleService) Accept(ctx context.Context, contractorID, requestID string) (*models.BookedSlot, error) {
	req, err := s.Repo.GetRequestByID(contractorID, requestID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrRequestNotFound) {
			return nil, NewRequestNotFoundError(requestID)
		}
		return nil, err
	}
	if req.Status != models.MeetingStatusPending {
		return nil, NewRequestNotFoundError(requestID)
	}

	if err := s.Repo.ConfirmRequest(ctx, contractorID, *req); err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrRequestNotFound):
			return nil, NewRequestNotFoundError(requestID)
		case errors.Is(err, scheduleRepo.ErrSlotConflict):
			return nil, NewSlotTakenError(req.Date, req.StartTime)
		}
		return nil, err
	}

	slot := &models.BookedSlot{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		RealtorID: req.RealtorID,
		Status:    models.SlotStatusConfirmed,
		Notes:     req.Notes,
	}

	s.scheduleReminder(contractorID, slot)

	utils.GetLogger().Info("meeting confirmed",
		zap.String("contractorID", contractorID),
		zap.String("requestID", requestID),
		zap.String("date", slot.Date),
		zap.String("startTime", slot.StartTime))
	return slot, nil
}

// Decline marks a pending request declined in place.
func (s *DefaultScheduleService) Decline(contractorID, requestID string) error {
	if err := s.Repo.DeclineRequest(contractorID, requestID); err != nil {
		if errors.Is(err, scheduleRepo.ErrRequestNotFound) {
			return NewRequestNotFoundError(requestID)
		}
		return err
	}
	return nil
}

// DirectBook routes the UI's "book now" shortcut through the canonical
// lifecycle: it creates a request and immediately accepts it.
func (s *DefaultScheduleService) DirectBook(ctx context.Context, contractorID, realtorID, date, startTime, notes string) (*models.BookedSlot, error) {
	req, err := s.buildRequest(contractorID, realtorID, date, startTime, notes)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.InsertRequest(contractorID, *req); err != nil {
		return nil, err
	}
	return s.Accept(ctx, contractorID, req.ID)
}

// Requests lists a contractor's meeting requests.
func (s *DefaultScheduleService) Requests(contractorID string) ([]models.MeetingRequest, error) {
	return s.Repo.GetRequests(contractorID)
}

// UpdateRequestNotes replaces the notes on a meeting request.
func (s *DefaultScheduleService) UpdateRequestNotes(contractorID, requestID, notes string) error {
	if err := s.Repo.UpdateRequestNotes(contractorID, requestID, notes); err != nil {
		if errors.Is(err, scheduleRepo.ErrRequestNotFound) {
			return NewRequestNotFoundError(requestID)
		}
		return err
	}
	return nil
}

// UpdateSlotNotes replaces the notes on a confirmed slot.
func (s *DefaultScheduleService) UpdateSlotNotes(contractorID, date, startTime, notes string) error {
	if err := s.Repo.UpdateSlotNotes(contractorID, date, startTime, notes); err != nil {
		if errors.Is(err, scheduleRepo.ErrRequestNotFound) {
			return NewSlotUnavailableError(date, startTime)
		}
		return err
	}
	return nil
}

// scheduleReminder enqueues a pre-meeting reminder. Failures are logged,
// never propagated: the booking already succeeded.
func (s *DefaultScheduleService) scheduleReminder(contractorID string, slot *models.BookedSlot) {
	if s.Reminders == nil {
		return
	}

	day, err := time.ParseInLocation(models.DateLayout, slot.Date, time.Local)
	if err != nil {
		return
	}
	startMin, err := parseClock(slot.StartTime)
	if err != nil {
		return
	}

	payload := models.ReminderPayload{
		ContractorID: contractorID,
		RealtorID:    slot.RealtorID,
		Date:         slot.Date,
		StartTime:    slot.StartTime,
		Notes:        slot.Notes,
	}
	if err := s.Reminders.ScheduleMeetingReminder(payload, slotStart(day, startMin)); err != nil {
		utils.GetLogger().Warn("failed to schedule meeting reminder",
			zap.String("contractorID", contractorID),
			zap.String("date", slot.Date),
			zap.Error(err))
	}
}
