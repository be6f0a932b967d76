package models

// ReminderPayload is the asynq task payload for a meeting reminder.
type ReminderPayload struct {
	ContractorID string `json:"contractorId"`
	RealtorID    string `json:"realtorId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	Notes        string `json:"notes,omitempty"`
}
