package thermal

import (
	"fmt"
	"math"

	"cooking_probe/internal/models"

	"gonum.org/v1/gonum/stat"
)

// TimeToTarget estimates how long until the internal temperature reaches
// target. The rate k comes from a least-squares line through
// ln((T-Text)/(T0-Text)) over elapsed time; the external temperature is
// assumed to hold at its last value from here on. It returns 0 when the last
// reading is already at or above target.
func TimeToTarget(s models.Series, target float64) (float64, error) {
	if !s.Consistent() {
		return 0, ErrLengthMismatch
	}
	if s.Len() < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples", ErrInsufficientData)
	}

	last := s.Last()
	if last.Internal >= target {
		return 0, nil
	}

	t0, start := s.Internal[0], s.Time[0]
	var xs, ys []float64
	for i := range s.Time {
		ratio := (s.Internal[i] - s.External[i]) / (t0 - s.External[i])
		if ratio > 0 && !math.IsInf(ratio, 0) {
			xs = append(xs, s.Time[i]-start)
			ys = append(ys, math.Log(ratio))
		}
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 usable samples", ErrInsufficientData)
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	k := -slope
	if !(k > 0) || math.IsInf(k, 0) {
		return 0, ErrInvalidRate
	}

	ratio := (target - last.External) / (t0 - last.External)
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return 0, ErrTargetOutOfRange
	}
	done := -math.Log(ratio) / k
	remaining := done - (last.Time - start)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}
