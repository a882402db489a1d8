package thermal

import "errors"

var (
	ErrEmptySeries         = errors.New("series is empty")
	ErrLengthMismatch      = errors.New("time, internal and external series must have the same length")
	ErrInsufficientData    = errors.New("not enough data points to fit model")
	ErrInvalidInitialGuess = errors.New("initial guess must be a positive finite number")
	ErrFitNotConverged     = errors.New("fit did not converge")
	ErrInvalidWeight       = errors.New("weight must be a positive finite number")
	ErrInvalidRate         = errors.New("invalid model: rate constant must be positive")
	ErrTargetOutOfRange    = errors.New("target temperature out of valid range")
)
