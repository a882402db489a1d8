package thermal

import (
	"errors"
	"math"
	"testing"

	"cooking_probe/internal/models"
)

// synthetic builds noiseless samples from the exchange model with constant ambient.
func synthetic(t0, text, c, step float64, n int) models.Series {
	var s models.Series
	for i := 0; i < n; i++ {
		tm := step * float64(i)
		s.Append(models.Sample{Time: tm, Internal: exchange(tm, c, t0, text), External: text})
	}
	return s
}

func TestFit_RecoversKnownRate(t *testing.T) {
	cases := []struct {
		name        string
		t0, text, c float64
		step        float64
		n, points   int
	}{
		{name: "heating", t0: 20, text: 100, c: 0.0003, step: 60, n: 100, points: 150},
		{name: "cooling", t0: 90, text: 20, c: 0.001, step: 30, n: 120, points: 150},
		{name: "prefix only", t0: 40, text: 225, c: 0.00005, step: 10, n: 400, points: 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := synthetic(tc.t0, tc.text, tc.c, tc.step, tc.n)
			opts := DefaultFitOptions()
			opts.Points = tc.points

			res, err := Fit(s, opts)
			if err != nil {
				t.Fatalf("Fit: %v", err)
			}
			if rel := math.Abs(res.C-tc.c) / tc.c; rel > 1e-6 {
				t.Fatalf("c: got %g, want %g (rel err %g)", res.C, tc.c, rel)
			}
			if res.T0 != tc.t0 || res.Text != tc.text {
				t.Fatalf("anchors: got T0=%g Text=%g", res.T0, res.Text)
			}
			if want := min(tc.points, tc.n); res.Points != want {
				t.Fatalf("points: got %d, want %d", res.Points, want)
			}
			if res.RMSE > 1e-6 {
				t.Fatalf("rmse too large: %g", res.RMSE)
			}
		})
	}
}

func TestFit_AnchorsUseWholeSeries(t *testing.T) {
	s := series([3]float64{0, 20, 90}, [3]float64{60, 25, 100}, [3]float64{120, 30, 110})
	opts := DefaultFitOptions()
	opts.Points = 2
	res, err := Fit(s, opts)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if res.T0 != 20 || res.Text != 100 {
		t.Fatalf("expected T0=20 Text=100 (mean of all external), got %g %g", res.T0, res.Text)
	}
	if res.Points != 2 {
		t.Fatalf("expected 2 prefix points, got %d", res.Points)
	}
}

func TestFit_Failures(t *testing.T) {
	good := synthetic(20, 100, 0.0003, 60, 20)
	cases := []struct {
		name string
		s    models.Series
		opts FitOptions
		want error
	}{
		{name: "empty", s: models.Series{}, opts: DefaultFitOptions(), want: ErrEmptySeries},
		{name: "length mismatch", s: models.Series{Time: []float64{1, 2}, Internal: []float64{1}, External: []float64{1, 2}}, opts: DefaultFitOptions(), want: ErrLengthMismatch},
		{name: "one prefix point", s: good, opts: FitOptions{Points: 1, InitialGuess: DefaultInitialGuess}, want: ErrInsufficientData},
		{name: "equal times", s: series([3]float64{5, 20, 100}, [3]float64{5, 21, 100}, [3]float64{5, 22, 100}), opts: DefaultFitOptions(), want: ErrInsufficientData},
		{name: "zero guess", s: good, opts: FitOptions{InitialGuess: 0}, want: ErrInvalidInitialGuess},
		{name: "negative guess", s: good, opts: FitOptions{InitialGuess: -1}, want: ErrInvalidInitialGuess},
		{name: "flat model", s: series([3]float64{0, 50, 50}, [3]float64{60, 51, 50}, [3]float64{120, 52, 50}), opts: DefaultFitOptions(), want: ErrFitNotConverged},
		{name: "guess far off", s: good, opts: FitOptions{InitialGuess: 1e6}, want: ErrFitNotConverged},
		// gradient is ~1e-20 here, far below any absolute gradient stop
		{name: "guess on plateau", s: good, opts: FitOptions{InitialGuess: 1}, want: ErrFitNotConverged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Fit(tc.s, tc.opts)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got err %v, want %v", err, tc.want)
			}
			if res != (FitResult{}) {
				t.Fatalf("expected zero result on failure, got %+v", res)
			}
		})
	}
}

func TestFitResult_CurveAndGrid(t *testing.T) {
	res := FitResult{C: 0.001, T0: 90, Text: 20}
	grid := SmoothGrid(0, 46800, 100)
	if len(grid) != 100 || grid[0] != 0 || math.Abs(grid[99]-46800) > 1e-9 {
		t.Fatalf("unexpected grid ends: len=%d first=%g last=%g", len(grid), grid[0], grid[len(grid)-1])
	}
	curve := res.Curve(grid)
	if curve[0] != 90 {
		t.Fatalf("curve must start at T0, got %g", curve[0])
	}
	for i := 1; i < len(curve); i++ {
		if curve[i] > curve[i-1] {
			t.Fatalf("cooling curve must not increase at %d", i)
		}
	}
	if math.Abs(curve[99]-20) > 1e-6 {
		t.Fatalf("curve should approach ambient, got %g", curve[99])
	}
	if g := SmoothGrid(3, 9, 1); len(g) != 1 || g[0] != 3 {
		t.Fatalf("single point grid: %v", g)
	}
	if g := SmoothGrid(0, 1, 0); g != nil {
		t.Fatalf("empty grid expected, got %v", g)
	}
}
