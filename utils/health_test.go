package utils

import (
	"testing"
	"time"
)

func TestGetHealthStatus_ReturnsStoredSnapshot(t *testing.T) {
	checked := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	healthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:         true,
		Cache:         true,
		AuthCache:     false,
		ReminderQueue: true,
		CheckedAt:     checked,
	}
	healthMu.Unlock()

	status := GetHealthStatus()
	if !status.Mongo || !status.Cache || status.AuthCache || !status.ReminderQueue {
		t.Fatalf("unexpected snapshot: %+v", status)
	}
	if !status.CheckedAt.Equal(checked) {
		t.Fatalf("expected checkedAt %v, got %v", checked, status.CheckedAt)
	}
}
