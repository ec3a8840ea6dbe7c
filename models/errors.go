package models

import "errors"

// Failure modes of the ledger write path. Controllers translate these into
// HTTP statuses, tests match them with errors.Is.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientFunds = errors.New("amount exceeds current balance")
	ErrRecomputation     = errors.New("balance recomputation failed")
	ErrGlobalCategory    = errors.New("global categories are read only")
	ErrDuplicateCategory = errors.New("category already exists")
)
