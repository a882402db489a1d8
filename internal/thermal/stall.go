package thermal

import "cooking_probe/internal/models"

// FilterStalls drops rows whose internal and external readings both repeat
// the previous row exactly. Row 0 is always kept. It returns the filtered
// series and the number of rows dropped.
func FilterStalls(s models.Series) (models.Series, int) {
	n := s.Len()
	if n <= 1 {
		return s, 0
	}

	out := models.Series{
		Time:     make([]float64, 0, n),
		Internal: make([]float64, 0, n),
		External: make([]float64, 0, n),
	}
	out.Append(s.At(0))
	for i := 1; i < n; i++ {
		if s.Internal[i] != s.Internal[i-1] || s.External[i] != s.External[i-1] {
			out.Append(s.At(i))
		}
	}
	return out, n - out.Len()
}

// Accept decides whether a live reading should extend a series whose last
// accepted sample is last (nil when nothing was accepted yet).
func Accept(last *models.Sample, next models.Reading) bool {
	if next.Time == nil || next.Internal == nil || next.External == nil {
		return false
	}
	if last == nil {
		return true
	}
	return *next.Internal != last.Internal || *next.External != last.External
}
