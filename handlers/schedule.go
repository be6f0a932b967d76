package handlers

import (
	"net/http"

	"craftlink/models"
	"craftlink/services/scheduling"
	"craftlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves availability and meeting-lifecycle endpoints.
type ScheduleHandler struct {
	Scheduler scheduling.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc scheduling.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Scheduler: svc}
}

// scheduleStatus maps scheduling error codes onto HTTP statuses.
func scheduleStatus(err error) int {
	switch scheduling.ErrCode(err) {
	case scheduling.CodeInvalidInput:
		return http.StatusBadRequest
	case scheduling.CodeSlotUnavailable, scheduling.CodeSlotTaken:
		return http.StatusConflict
	case scheduling.CodeRequestNotFound:
		return http.StatusNotFound
	case scheduling.CodeNoAvailability:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *ScheduleHandler) fail(c *gin.Context, err error, msg string) {
	status := scheduleStatus(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error(msg, zap.Error(err))
	}
	utils.JSONError(c, status, msg, err.Error())
}

// SetAvailabilityHandler handles PUT /api/schedule/availability.
func (h *ScheduleHandler) SetAvailabilityHandler(c *gin.Context) {
	var av models.Availability
	if err := c.ShouldBindJSON(&av); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Scheduler.SetAvailability(currentUserID(c), av); err != nil {
		h.fail(c, err, "failed to set availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// GetAvailabilityHandler handles GET /api/schedule/availability.
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	av, err := h.Scheduler.GetAvailability(currentUserID(c))
	if err != nil {
		h.fail(c, err, "failed to fetch availability")
		return
	}
	c.JSON(http.StatusOK, av)
}

// AvailableSlotsHandler handles GET /api/schedule/:contractorID/slots?date=YYYY-MM-DD.
// Realtors call this to render the bookable start times for a date.
func (h *ScheduleHandler) AvailableSlotsHandler(c *gin.Context) {
	contractorID := c.Param("contractorID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	slots, err := h.Scheduler.AvailableSlots(contractorID, date)
	if err != nil {
		h.fail(c, err, "failed to compute available slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// proposeInput is the payload for propose and direct-book calls.
type proposeInput struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	Notes     string `json:"notes"`
}

// ProposeMeetingHandler handles POST /api/schedule/:contractorID/propose.
func (h *ScheduleHandler) ProposeMeetingHandler(c *gin.Context) {
	var input proposeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := h.Scheduler.Propose(c.Param("contractorID"), currentUserID(c), input.Date, input.StartTime, input.Notes)
	if err != nil {
		h.fail(c, err, "failed to propose meeting")
		return
	}
	c.JSON(http.StatusCreated, req)
}

// DirectBookHandler handles POST /api/schedule/:contractorID/book.
// The UI shortcut still runs the full request lifecycle underneath.
func (h *ScheduleHandler) DirectBookHandler(c *gin.Context) {
	var input proposeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Scheduler.DirectBook(c.Request.Context(), c.Param("contractorID"), currentUserID(c), input.Date, input.StartTime, input.Notes)
	if err != nil {
		h.fail(c, err, "failed to book meeting")
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListRequestsHandler handles GET /api/schedule/requests.
func (h *ScheduleHandler) ListRequestsHandler(c *gin.Context) {
	reqs, err := h.Scheduler.Requests(currentUserID(c))
	if err != nil {
		h.fail(c, err, "failed to list meeting requests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// AcceptRequestHandler handles POST /api/schedule/requests/:requestID/accept.
func (h *ScheduleHandler) AcceptRequestHandler(c *gin.Context) {
	slot, err := h.Scheduler.Accept(c.Request.Context(), currentUserID(c), c.Param("requestID"))
	if err != nil {
		h.fail(c, err, "failed to accept meeting request")
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeclineRequestHandler handles POST /api/schedule/requests/:requestID/decline.
func (h *ScheduleHandler) DeclineRequestHandler(c *gin.Context) {
	if err := h.Scheduler.Decline(currentUserID(c), c.Param("requestID")); err != nil {
		h.fail(c, err, "failed to decline meeting request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting request declined"})
}

// UpdateRequestNotesHandler handles PUT /api/schedule/requests/:requestID/notes.
func (h *ScheduleHandler) UpdateRequestNotesHandler(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Scheduler.UpdateRequestNotes(currentUserID(c), c.Param("requestID"), input.Notes); err != nil {
		h.fail(c, err, "failed to update request notes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notes updated"})
}

// UpdateSlotNotesHandler handles PUT /api/schedule/slots/notes.
func (h *ScheduleHandler) UpdateSlotNotesHandler(c *gin.Context) {
	var input struct {
		Date      string `json:"date" binding:"required"`
		StartTime string `json:"startTime" binding:"required"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Scheduler.UpdateSlotNotes(currentUserID(c), input.Date, input.StartTime, input.Notes); err != nil {
		h.fail(c, err, "failed to update slot notes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notes updated"})
}
