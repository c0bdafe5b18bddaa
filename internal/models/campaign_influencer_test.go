package models

import "testing"

func TestIsValidAssociationStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{AssociationStatusContacted, true},
		{AssociationStatusConfirmed, true},
		{AssociationStatusPosted, true},
		{AssociationStatusPaid, true},
		{"draft", false},
		{"", false},
		{"PAID", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidAssociationStatus(tt.status); got != tt.expected {
				t.Errorf("IsValidAssociationStatus(%q) = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestAssociationStatusProgression(t *testing.T) {
	// contacted -> confirmed -> posted -> paid, with paid terminal
	order := []string{
		AssociationStatusContacted,
		AssociationStatusConfirmed,
		AssociationStatusPosted,
		AssociationStatusPaid,
	}

	for i := 0; i < len(order)-1; i++ {
		next := NextAssociationStatuses[order[i]]
		if len(next) != 1 || next[0] != order[i+1] {
			t.Errorf("expected %q -> %q, got %v", order[i], order[i+1], next)
		}
	}

	if len(NextAssociationStatuses[AssociationStatusPaid]) != 0 {
		t.Errorf("paid should be terminal, got %v", NextAssociationStatuses[AssociationStatusPaid])
	}
}

func TestIsValidDeliverableType(t *testing.T) {
	valid := []string{
		DeliverablePost, DeliverableStory, DeliverableReel,
		DeliverableVideo, DeliverableBlog, DeliverableOther,
	}
	for _, d := range valid {
		if !IsValidDeliverableType(d) {
			t.Errorf("IsValidDeliverableType(%q) = false, want true", d)
		}
	}

	for _, d := range []string{"", "podcast", "Post"} {
		if IsValidDeliverableType(d) {
			t.Errorf("IsValidDeliverableType(%q) = true, want false", d)
		}
	}
}
