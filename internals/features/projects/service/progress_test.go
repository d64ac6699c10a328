package service

import (
	"testing"

	"decofilm_backend/internals/constants"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		current int
		want    int
	}{
		{"from zero", 0, 25},
		{"mid", 50, 75},
		{"near ceiling clamps", 90, 100},
		{"at ceiling stays", 100, 100},
		{"negative input clamps up", -10, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Advance(tc.current); got != tc.want {
				t.Fatalf("Advance(%d) = %d, want %d", tc.current, got, tc.want)
			}
		})
	}
}

func TestAdvanceIdempotentAtCeiling(t *testing.T) {
	p := 100
	for i := 0; i < 5; i++ {
		p = Advance(p)
	}
	if p != 100 {
		t.Fatalf("repeated Advance at ceiling = %d, want 100", p)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		progress int
		want     string
	}{
		{0, constants.ProjectStatusScheduled},
		{24, constants.ProjectStatusScheduled},
		{25, constants.ProjectStatusInProgress},
		{50, constants.ProjectStatusInProgress},
		{74, constants.ProjectStatusInProgress},
		{75, constants.ProjectStatusQualityCheck},
		{99, constants.ProjectStatusQualityCheck},
		{100, constants.ProjectStatusCompleted},
	}

	for _, tc := range tests {
		if got := StatusFor(tc.progress); got != tc.want {
			t.Errorf("StatusFor(%d) = %q, want %q", tc.progress, got, tc.want)
		}
	}
}
