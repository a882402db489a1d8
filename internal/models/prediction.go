package models

// Prediction is the extrapolated series returned by the heat transfer endpoint.
type Prediction struct {
	Time      []float64 `json:"time_data"`
	Internal  []float64 `json:"internal_temp_data"`
	External  []float64 `json:"external_temp_data"`
	Predicted []float64 `json:"predicted_temp_data"`
}
