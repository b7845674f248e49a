package hr

import "testing"

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"full week", "2026-03-02", "2026-03-08", 5},        // Mon..Sun
		{"single weekday", "2026-03-04", "2026-03-04", 1},   // Wednesday
		{"single saturday", "2026-03-07", "2026-03-07", 0},
		{"weekend only", "2026-03-07", "2026-03-08", 0},
		{"spanning weekend", "2026-03-06", "2026-03-09", 2}, // Fri + Mon
		{"two full weeks", "2026-03-02", "2026-03-15", 10},
		{"month boundary", "2026-02-27", "2026-03-02", 2},   // Fri + Mon
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := WorkingDays(tc.from, tc.to)
			if err != nil {
				t.Fatalf("WorkingDays(%s, %s): %v", tc.from, tc.to, err)
			}
			if got != tc.want {
				t.Errorf("WorkingDays(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestWorkingDaysErrors(t *testing.T) {
	if _, err := WorkingDays("2026-03-10", "2026-03-05"); err == nil {
		t.Error("expected error for reversed range")
	}
	if _, err := WorkingDays("not-a-date", "2026-03-05"); err == nil {
		t.Error("expected error for malformed from date")
	}
	if _, err := WorkingDays("2026-03-05", "05/03/2026"); err == nil {
		t.Error("expected error for malformed to date")
	}
}
