package classification

import (
	"testing"
	"time"

	"arsipku/internal/model"
)

func TestRetentionYears(t *testing.T) {
	items := []model.Classification{
		{Code: "001", ActiveRetentionYears: 2},
		{Code: "001.1", ActiveRetentionYears: 10},
	}

	tests := []struct {
		name        string
		code        string
		wantYears   int
		wantMatched bool
	}{
		{"matched code", "001.1", 10, true},
		{"matched top level", "001", 2, true},
		{"unmatched falls back to default", "999", 5, false},
		{"empty code falls back to default", "", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, matched := RetentionYears(tt.code, items)
			if years != tt.wantYears || matched != tt.wantMatched {
				t.Errorf("RetentionYears(%q) = (%d, %v), want (%d, %v)",
					tt.code, years, matched, tt.wantYears, tt.wantMatched)
			}
		})
	}
}

func TestRetentionDate(t *testing.T) {
	tests := []struct {
		name  string
		date  model.Date
		years int
		want  string
	}{
		{"plain year advance", model.NewDate(2024, time.March, 15), 5, "2029-03-15"},
		{"zero years", model.NewDate(2024, time.March, 15), 0, "2024-03-15"},
		{"leap day normalizes", model.NewDate(2024, time.February, 29), 1, "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RetentionDate(tt.date, tt.years).String(); got != tt.want {
				t.Errorf("RetentionDate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatusAt(t *testing.T) {
	retention := model.NewDate(2029, time.January, 10)

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"before retention date", time.Date(2028, 12, 31, 10, 0, 0, 0, time.UTC), StatusActive},
		{"on retention date", time.Date(2029, 1, 10, 23, 59, 0, 0, time.UTC), StatusActive},
		{"after retention date", time.Date(2029, 1, 11, 0, 0, 1, 0, time.UTC), StatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusAt(retention, tt.now); got != tt.want {
				t.Errorf("StatusAt(%s, %s) = %s, want %s", retention, tt.now, got, tt.want)
			}
		})
	}
}
