package models

import "testing"

func TestIsValidCampaignStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{CampaignStatusDraft, true},
		{CampaignStatusActive, true},
		{CampaignStatusCompleted, true},
		{CampaignStatusCancelled, true},
		{"", false},
		{"archived", false},
		{"Active", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidCampaignStatus(tt.status); got != tt.expected {
				t.Errorf("IsValidCampaignStatus(%q) = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}
