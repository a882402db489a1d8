package thermal

import (
	"reflect"
	"testing"

	"cooking_probe/internal/models"
)

func series(rows ...[3]float64) models.Series {
	var s models.Series
	for _, r := range rows {
		s.Append(models.Sample{Time: r[0], Internal: r[1], External: r[2]})
	}
	return s
}

func TestFilterStalls(t *testing.T) {
	tests := []struct {
		name        string
		in          models.Series
		wantTimes   []float64
		wantDropped int
	}{
		{name: "empty", in: models.Series{}, wantTimes: nil},
		{name: "single row", in: series([3]float64{1, 50, 70}), wantTimes: []float64{1}},
		{
			name:        "repeat dropped, change kept",
			in:          series([3]float64{100, 50, 70}, [3]float64{101, 50, 70}, [3]float64{102, 51, 70}),
			wantTimes:   []float64{100, 102},
			wantDropped: 1,
		},
		{
			name:      "external change alone keeps row",
			in:        series([3]float64{1, 50, 70}, [3]float64{2, 50, 71}),
			wantTimes: []float64{1, 2},
		},
		{
			name:        "long stall run",
			in:          series([3]float64{1, 5, 5}, [3]float64{2, 5, 5}, [3]float64{3, 5, 5}, [3]float64{4, 5, 5}),
			wantTimes:   []float64{1},
			wantDropped: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := FilterStalls(tt.in)
			if dropped != tt.wantDropped {
				t.Fatalf("dropped: got %d, want %d", dropped, tt.wantDropped)
			}
			if len(got.Time) != len(tt.wantTimes) || (len(tt.wantTimes) > 0 && !reflect.DeepEqual(got.Time, tt.wantTimes)) {
				t.Fatalf("times: got %v, want %v", got.Time, tt.wantTimes)
			}
			if !got.Consistent() {
				t.Fatalf("inconsistent output: %+v", got)
			}
		})
	}
}

func TestFilterStalls_AdjacentRowsDifferAndIdempotent(t *testing.T) {
	in := series(
		[3]float64{0, 20, 100}, [3]float64{1, 20, 100}, [3]float64{2, 21, 100},
		[3]float64{3, 21, 100}, [3]float64{4, 21, 101}, [3]float64{5, 20, 100},
		[3]float64{6, 20, 100},
	)
	once, _ := FilterStalls(in)
	if once.Time[0] != in.Time[0] {
		t.Fatalf("first row must be kept")
	}
	for i := 1; i < once.Len(); i++ {
		if once.Internal[i] == once.Internal[i-1] && once.External[i] == once.External[i-1] {
			t.Fatalf("rows %d and %d are a stall pair: %+v", i-1, i, once)
		}
	}
	twice, dropped := FilterStalls(once)
	if dropped != 0 || !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter is not idempotent: %+v vs %+v", once, twice)
	}
}

// keptAgainstRetained drops a row when it repeats the last row kept so far.
func keptAgainstRetained(s models.Series) []float64 {
	var times []float64
	last := -1
	for i := 0; i < s.Len(); i++ {
		if last >= 0 && s.Internal[i] == s.Internal[last] && s.External[i] == s.External[last] {
			continue
		}
		times = append(times, s.Time[i])
		last = i
	}
	return times
}

func TestFilterStalls_InputRowMatchesRetainedRow(t *testing.T) {
	a, b := [2]float64{20, 100}, [2]float64{21, 100}
	var in models.Series
	for i, v := range [][2]float64{a, a, b, a, a, b, b, b, a} {
		in.Append(models.Sample{Time: float64(i), Internal: v[0], External: v[1]})
	}
	got, dropped := FilterStalls(in)
	want := keptAgainstRetained(in)
	if !reflect.DeepEqual(got.Time, want) {
		t.Fatalf("times: got %v, want %v", got.Time, want)
	}
	if dropped != in.Len()-len(want) {
		t.Fatalf("dropped: got %d, want %d", dropped, in.Len()-len(want))
	}
}

func ptr(v float64) *float64 { return &v }

func TestAccept(t *testing.T) {
	last := &models.Sample{Time: 10, Internal: 50, External: 70}
	cases := []struct {
		name string
		last *models.Sample
		next models.Reading
		want bool
	}{
		{"first reading", nil, models.Reading{Time: ptr(0), Internal: ptr(50), External: ptr(70)}, true},
		{"first reading missing value", nil, models.Reading{Time: ptr(0), Internal: nil, External: ptr(70)}, false},
		{"missing external", last, models.Reading{Time: ptr(20), Internal: ptr(51), External: nil}, false},
		{"missing time", last, models.Reading{Internal: ptr(51), External: ptr(70)}, false},
		{"stall", last, models.Reading{Time: ptr(20), Internal: ptr(50), External: ptr(70)}, false},
		{"internal changed", last, models.Reading{Time: ptr(20), Internal: ptr(51), External: ptr(70)}, true},
		{"external changed", last, models.Reading{Time: ptr(20), Internal: ptr(50), External: ptr(69)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Accept(tc.last, tc.next); got != tc.want {
				t.Fatalf("Accept: got %v, want %v", got, tc.want)
			}
		})
	}
}
