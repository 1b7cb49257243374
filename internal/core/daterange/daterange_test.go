package daterange

import (
	"testing"
	"time"
)

func TestNewNormalizesBoundaries(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 22, 5, 0, time.UTC)
	end := time.Date(2025, 3, 12, 1, 0, 0, 0, time.UTC)

	r := New(start, end)

	if got, want := r.Start, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("start = %v, want %v", got, want)
	}
	if got, want := r.End, time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("end = %v, want %v", got, want)
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  map[string]string
	}{
		{
			name:  "both endpoints",
			start: "2025-03-10",
			end:   "2025-03-12",
			want: map[string]string{
				"startDate": "2025-03-10T00:00:00",
				"endDate":   "2025-03-12T23:59:59",
			},
		},
		{
			name:  "start only",
			start: "2025-03-10",
			want:  map[string]string{"startDate": "2025-03-10T00:00:00"},
		},
		{
			name: "end only",
			end:  "2025-03-12",
			want: map[string]string{"endDate": "2025-03-12T23:59:59"},
		},
		{
			name: "empty range has no params",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseDays(tt.start, tt.end)
			if err != nil {
				t.Fatalf("ParseDays: %v", err)
			}
			got := r.Params()
			if len(got) != len(tt.want) {
				t.Fatalf("params = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("params[%s] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestParseDaysRejectsGarbage(t *testing.T) {
	if _, err := ParseDays("10/03/2025", ""); err == nil {
		t.Fatal("expected parse error for non-ISO day")
	}
}

func TestComplete(t *testing.T) {
	full, _ := ParseDays("2025-01-01", "2025-01-31")
	half, _ := ParseDays("2025-01-01", "")

	if !full.Complete() {
		t.Fatal("full range should be complete")
	}
	if half.Complete() {
		t.Fatal("half range should not be complete")
	}
	if (Range{}).Complete() {
		t.Fatal("zero range should not be complete")
	}
}

func TestEqualUsesNormalizedBoundaries(t *testing.T) {
	a := New(
		time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC),
		time.Date(2025, 5, 2, 18, 0, 0, 0, time.UTC),
	)
	b := New(
		time.Date(2025, 5, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 2, 0, 0, 1, 0, time.UTC),
	)
	if !a.Equal(b) {
		t.Fatal("same days should compare equal after normalization")
	}

	c := New(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC))
	if a.Equal(c) {
		t.Fatal("different end days should not compare equal")
	}
}
