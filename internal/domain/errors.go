package domain

import "errors"

var (
	// Validation errors
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidAmount = errors.New("amount must be a number greater than zero")

	// Ledger errors
	ErrIndexOutOfRange = errors.New("no sale at the given position")
	ErrDeserialize     = errors.New("could not read stored sales")
	ErrPersistence     = errors.New("could not persist sales")

	// Report errors
	ErrNoSales = errors.New("no sales recorded")
	ErrExport  = errors.New("could not export report")
)
