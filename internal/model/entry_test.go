package model

import "testing"

func TestRecordString(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "basic record",
			record: Record{Timestamp: "2024-01-01T00:00:00", Level: "INFO", Service: "auth", Message: "login ok"},
			want:   "2024-01-01T00:00:00 | INFO | auth | login ok",
		},
		{
			name:   "empty message",
			record: Record{Timestamp: "t", Level: "WARN", Service: "billing", Message: ""},
			want:   "t | WARN | billing | ",
		},
		{
			name:   "all fields empty but level",
			record: Record{Level: "ERROR"},
			want:   " | ERROR |  | ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLevelCountsTotal(t *testing.T) {
	c := LevelCounts{Info: 1, Warn: 2, Error: 3}
	if c.Total() != 6 {
		t.Errorf("expected total 6, got %d", c.Total())
	}
}
