package viewmodel

import (
	"math"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		total int64
		want  float64
	}{
		{"simple third", 1, 3, 33.3},
		{"two thirds rounds up", 2, 3, 66.7},
		{"whole", 50, 50, 100},
		{"zero part", 0, 10, 0},
		{"zero total", 5, 0, 0},
		{"negative total", 5, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.part, tt.total)
			if got != tt.want {
				t.Fatalf("Percent(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Percent(%d, %d) not finite: %v", tt.part, tt.total, got)
			}
		})
	}
}

func TestPercentOfFraction(t *testing.T) {
	if got := PercentOfFraction(0.6667); got != 66.7 {
		t.Fatalf("got %v, want 66.7", got)
	}
	if got := PercentOfFraction(math.NaN()); got != 0 {
		t.Fatalf("NaN fraction should yield 0, got %v", got)
	}
}

func TestRatioString(t *testing.T) {
	if got := RatioString(3, 10); got != "30.0" {
		t.Fatalf("got %q, want %q", got, "30.0")
	}
	if got := RatioString(0, 0); got != "0.0" {
		t.Fatalf("empty cohort must format as %q, got %q", "0.0", got)
	}
	if got := RatioString(1, 3); got != "33.3" {
		t.Fatalf("got %q, want %q", got, "33.3")
	}
}

func TestDistributionStayTimeScenario(t *testing.T) {
	rows := []Row{
		{Label: "0-5m", Value: 0},
		{Label: "5-10m", Value: 40},
		{Label: "10-15m", Value: 60},
	}

	got := Distribution(rows)

	want := []Metric{
		{Label: "5-10m", Value: 40, Percentage: 40.0},
		{Label: "10-15m", Value: 60, Percentage: 60.0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDistributionDenominatorIncludesDroppedRows(t *testing.T) {
	// the zero row is dropped from output but a hidden 50 must still weigh the split
	rows := []Row{
		{Label: "a", Value: 50},
		{Label: "b", Value: 0},
		{Label: "c", Value: 50},
		{Label: "d", Value: 100},
	}
	got := Distribution(rows)
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	if got[0].Percentage != 25.0 || got[2].Percentage != 50.0 {
		t.Fatalf("unexpected percentages: %+v", got)
	}
}

func TestDistributionSumsCloseTo100(t *testing.T) {
	tests := [][]Row{
		{{Label: "a", Value: 1}, {Label: "b", Value: 1}, {Label: "c", Value: 1}},
		{{Label: "a", Value: 7}, {Label: "b", Value: 13}, {Label: "c", Value: 17}, {Label: "d", Value: 23}},
		{{Label: "a", Value: 1}, {Label: "b", Value: 999998}, {Label: "c", Value: 1}},
	}
	for _, rows := range tests {
		var sum float64
		for _, m := range Distribution(rows) {
			sum += m.Percentage
		}
		if math.Abs(sum-100) > 0.5 {
			t.Fatalf("percentages sum to %v for %+v, want within 0.5 of 100", sum, rows)
		}
	}
}

func TestDistributionAllZero(t *testing.T) {
	got := Distribution([]Row{{Label: "a", Value: 0}, {Label: "b", Value: 0}})
	if len(got) != 0 {
		t.Fatalf("all-zero input should drop every row, got %+v", got)
	}
}

func TestNewRatioPairTeamVsIndividual(t *testing.T) {
	got := NewRatioPair("TEAM", 30, "INDIVIDUAL", 70)

	if got.Left.Value != 30 || got.Left.Percentage != 30.0 {
		t.Fatalf("left = %+v, want value 30 pct 30.0", got.Left)
	}
	if got.Right.Value != 70 || got.Right.Percentage != 70.0 {
		t.Fatalf("right = %+v, want value 70 pct 70.0", got.Right)
	}
	if got.Left.Label != "Team" || got.Right.Label != "Individual" {
		t.Fatalf("labels = %q / %q", got.Left.Label, got.Right.Label)
	}
}

func TestNewRatioPairZeroTotal(t *testing.T) {
	got := NewRatioPair("TEAM", 0, "INDIVIDUAL", 0)
	if got.Left.Percentage != 0 || got.Right.Percentage != 0 {
		t.Fatalf("zero totals must yield zero percentages: %+v", got)
	}
}

func TestMergeBreakdown(t *testing.T) {
	primary := []Row{
		{Label: "kpt", Value: 12},
		{Label: "4ls", Value: 8},
		{Label: "mad-sad-glad", Value: 5},
	}
	recommend := []Row{{Label: "kpt", Value: 9}, {Label: "stray", Value: 3}}
	list := []Row{{Label: "4ls", Value: 8}}

	got := MergeBreakdown(primary, recommend, list)

	if len(got) != len(primary) {
		t.Fatalf("output length %d, want primary length %d", len(got), len(primary))
	}
	want := []Merged{
		{Label: "kpt", Values: []int64{12, 9, 0}},
		{Label: "4ls", Values: []int64{8, 0, 8}},
		{Label: "mad-sad-glad", Values: []int64{5, 0, 0}},
	}
	for i := range want {
		if got[i].Label != want[i].Label {
			t.Fatalf("row %d label %q, want %q", i, got[i].Label, want[i].Label)
		}
		for j := range want[i].Values {
			if got[i].Values[j] != want[i].Values[j] {
				t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	}
}

func TestMergeBreakdownEmptySecondaries(t *testing.T) {
	primary := []Row{{Label: "a", Value: 1}}
	got := MergeBreakdown(primary, nil, nil)
	if len(got) != 1 || got[0].Values[1] != 0 || got[0].Values[2] != 0 {
		t.Fatalf("missing secondaries should contribute zeros: %+v", got)
	}
}

func TestRelabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"RECOMMEND", "Recommended"},
		{"LIST", "Picked from list"},
		{"TEAM", "Team"},
		{"SOME_NEW_CODE", "Some New Code"},
		{"5-10m", "5-10m"},
	}
	for _, tt := range tests {
		if got := Relabel(tt.in); got != tt.want {
			t.Fatalf("Relabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
