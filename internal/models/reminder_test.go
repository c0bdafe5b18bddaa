package models

import (
	"testing"
	"time"
)

func TestReminderIsActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiration time.Time
		expected   bool
	}{
		{"future", now.Add(time.Hour), true},
		{"past", now.Add(-time.Hour), false},
		{"exactly now", now, false},
		{"one second ahead", now.Add(time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reminder{ExpirationDate: tt.expiration}
			if got := r.IsActive(now); got != tt.expected {
				t.Errorf("IsActive() = %v, want %v", got, tt.expected)
			}
		})
	}
}
