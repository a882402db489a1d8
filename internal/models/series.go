package models

// Sample is a single cleaned log row.
type Sample struct {
	Time     float64 `json:"time"`
	Internal float64 `json:"internal"`
	External float64 `json:"external"`
}

// Series holds three parallel columns of equal length.
type Series struct {
	Time     []float64 `json:"time_data"`
	Internal []float64 `json:"internal_temp_data"`
	External []float64 `json:"external_temp_data"`
}

// Len returns the number of rows. It is only meaningful for a consistent series.
func (s Series) Len() int { return len(s.Time) }

// Consistent reports whether all three columns have the same length.
func (s Series) Consistent() bool {
	return len(s.Time) == len(s.Internal) && len(s.Time) == len(s.External)
}

// At returns row i as a Sample.
func (s Series) At(i int) Sample {
	return Sample{Time: s.Time[i], Internal: s.Internal[i], External: s.External[i]}
}

// Last returns the final row.
func (s Series) Last() Sample { return s.At(s.Len() - 1) }

// Append adds a row to the series.
func (s *Series) Append(x Sample) {
	s.Time = append(s.Time, x.Time)
	s.Internal = append(s.Internal, x.Internal)
	s.External = append(s.External, x.External)
}

// Reading is a live probe reading; a nil field stands for the "N/A" marker.
type Reading struct {
	Time     *float64 `json:"time"`
	Internal *float64 `json:"internal"`
	External *float64 `json:"external"`
}
