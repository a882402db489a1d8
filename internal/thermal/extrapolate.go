package thermal

import (
	"math"

	"cooking_probe/internal/models"
)

// Horizon is the number of projected points appended by Extrapolate.
const Horizon = 5

// Extrapolate projects Horizon points past the last sample. The projected
// internal temperature is the same for every step: each one is computed from
// the last observed sample, never from a previous projection.
func Extrapolate(cat Category, weight float64, s models.Series) (models.Prediction, error) {
	if !s.Consistent() {
		return models.Prediction{}, ErrLengthMismatch
	}
	if s.Len() == 0 {
		return models.Prediction{}, ErrEmptySeries
	}
	if !(weight > 0) || math.IsInf(weight, 0) {
		return models.Prediction{}, ErrInvalidWeight
	}

	last := s.Last()
	k := cat.Coefficient()
	weightFactor := 1 / math.Sqrt(weight)

	n := s.Len()
	out := models.Prediction{
		Time:      append(make([]float64, 0, n+Horizon), s.Time...),
		Internal:  append(make([]float64, 0, n+Horizon), s.Internal...),
		External:  append(make([]float64, 0, n+Horizon), s.External...),
		Predicted: make([]float64, 0, Horizon),
	}
	for i := 1; i <= Horizon; i++ {
		temp := last.Internal + k*(last.External-last.Internal)*weightFactor
		out.Time = append(out.Time, last.Time+float64(i))
		out.Internal = append(out.Internal, temp)
		out.External = append(out.External, last.External)
		out.Predicted = append(out.Predicted, temp)
	}
	return out, nil
}
