package thermal

import (
	"fmt"
	"math"

	"cooking_probe/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultFitPoints     = 150
	DefaultInitialGuess  = 0.00007
	DefaultMaxIterations = 200
	DefaultTolerance     = 1.49012e-8

	// Display grid for fitted curves: 13 hours, 100 points.
	DefaultCurveEnd     = 46800.0
	DefaultCurveSamples = 100

	lambdaInit = 1e-3
	lambdaMax  = 1e16
)

// FitOptions tunes the rate constant solver.
type FitOptions struct {
	Points        int     // prefix length used for fitting
	InitialGuess  float64 // starting rate constant; must be > 0
	MaxIterations int     // model evaluation budget
	Tolerance     float64 // relative step and relative cost reduction
}

func DefaultFitOptions() FitOptions {
	return FitOptions{
		Points:        DefaultFitPoints,
		InitialGuess:  DefaultInitialGuess,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

func (o FitOptions) withDefaults() FitOptions {
	if o.Points <= 0 {
		o.Points = DefaultFitPoints
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// FitResult is the solved rate constant together with the anchors it is
// only meaningful with.
type FitResult struct {
	C          float64 `json:"c"`
	T0         float64 `json:"t0"`
	Text       float64 `json:"text"`
	Points     int     `json:"points"`
	Iterations int     `json:"iterations"`
	RMSE       float64 `json:"rmse"`
}

// Predict evaluates the fitted model at t.
func (r FitResult) Predict(t float64) float64 {
	return exchange(t, r.C, r.T0, r.Text)
}

// Curve evaluates the fitted model over grid.
func (r FitResult) Curve(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, t := range grid {
		out[i] = r.Predict(t)
	}
	return out
}

// SmoothGrid returns n evenly spaced points covering [start, end].
func SmoothGrid(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// exchange is Newton's law of cooling anchored at T0 with asymptote text.
func exchange(t, c, t0, text float64) float64 {
	return (t0-text)*math.Exp(-c*t) + text
}

// Fit solves for c in (T0-Text)*exp(-c*t)+Text using Levenberg-Marquardt on
// the first opts.Points rows. T0 is the first internal reading and Text the
// mean external reading of the whole series.
func Fit(s models.Series, opts FitOptions) (FitResult, error) {
	if !s.Consistent() {
		return FitResult{}, ErrLengthMismatch
	}
	if s.Len() == 0 {
		return FitResult{}, ErrEmptySeries
	}
	opts = opts.withDefaults()
	if !(opts.InitialGuess > 0) || math.IsInf(opts.InitialGuess, 0) {
		return FitResult{}, ErrInvalidInitialGuess
	}

	n := min(opts.Points, s.Len())
	ts, ys := s.Time[:n], s.Internal[:n]
	if n < 2 {
		return FitResult{}, fmt.Errorf("%w: %d prefix point(s)", ErrInsufficientData, n)
	}
	if floats.Min(ts) == floats.Max(ts) {
		return FitResult{}, fmt.Errorf("%w: all prefix times are equal", ErrInsufficientData)
	}

	p := problem{
		ts:   ts,
		ys:   ys,
		t0:   s.Internal[0],
		text: stat.Mean(s.External, nil),
	}
	c, evals, cost, err := p.solve(opts)
	if err != nil {
		return FitResult{}, err
	}
	return FitResult{
		C:          c,
		T0:         p.t0,
		Text:       p.text,
		Points:     n,
		Iterations: evals,
		RMSE:       math.Sqrt(cost / float64(n)),
	}, nil
}

type problem struct {
	ts, ys   []float64
	t0, text float64
}

// cost is the residual sum of squares at c.
func (p problem) cost(c float64) float64 {
	var sse float64
	for i, t := range p.ts {
		r := exchange(t, c, p.t0, p.text) - p.ys[i]
		sse += r * r
	}
	return sse
}

// normal returns J'r and J'J for the single parameter c.
func (p problem) normal(c float64) (g, h float64) {
	amp := p.t0 - p.text
	for i, t := range p.ts {
		e := math.Exp(-c * t)
		r := amp*e + p.text - p.ys[i]
		j := -amp * t * e
		g += j * r
		h += j * j
	}
	return g, h
}

func (p problem) solve(opts FitOptions) (c float64, evals int, cost float64, err error) {
	c = opts.InitialGuess
	cost = p.cost(c)
	evals = 1
	lambda := lambdaInit

	for evals < opts.MaxIterations {
		if cost == 0 {
			return c, evals, cost, nil
		}
		g, h := p.normal(c)
		if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
			return 0, evals, 0, fmt.Errorf("%w: model is insensitive to the rate constant at c=%g", ErrFitNotConverged, c)
		}

		step := -g / (h * (1 + lambda))
		next := c + step
		nextCost := p.cost(next)
		evals++

		small := math.Abs(step) <= opts.Tolerance*(math.Abs(c)+opts.Tolerance)
		if nextCost < cost && !math.IsNaN(nextCost) {
			reduced := (cost - nextCost) <= opts.Tolerance*cost
			c, cost = next, nextCost
			lambda = math.Max(lambda/10, 1e-12)
			if small || reduced {
				return c, evals, cost, nil
			}
			continue
		}

		if small {
			// No downhill step left at this resolution.
			return c, evals, cost, nil
		}
		lambda *= 10
		if lambda > lambdaMax {
			break
		}
	}
	return 0, evals, 0, fmt.Errorf("%w after %d evaluations (c=%g)", ErrFitNotConverged, evals, c)
}
