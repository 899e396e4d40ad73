package common

import "errors"

var (
	ErrorInvalidValue     = errors.New("invalid value")
	ErrorInsufficientData = errors.New("insufficient data")
	ErrorMalformedSeries  = errors.New("malformed series")
	ErrorInvalidParameter = errors.New("invalid parameter")
)
