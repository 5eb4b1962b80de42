package pricing

import "errors"

var (
	ErrInvalidYield      = errors.New("yield must be greater than 0 and at most 1")
	ErrMissingValue      = errors.New("required numeric value is missing")
	ErrNegativeValue     = errors.New("price and size must not be negative")
	ErrNonFiniteValue    = errors.New("price and size must be finite numbers")
	ErrEmptyDataset      = errors.New("dataset has no valid price records")
	ErrInsufficientData  = errors.New("not enough distinct values to estimate a density")
	ErrInvalidHousehold  = errors.New("household member counts must be between 0 and 10")
	ErrUnknownAgeGroup   = errors.New("unknown age group")
	ErrUnknownCostSource = errors.New("unknown cost source (use precomputed or derived)")
)
