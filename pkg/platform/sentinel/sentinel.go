package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors:
// - ErrNotFound: record does not exist in the store
// - ErrConflict: a record with the same key already exists
// - ErrInsufficient: an account cannot cover a debit
// - ErrUnavailable: backing service temporarily unavailable
//
// For precondition violations (paused, duplicate vote, ...), services use
// pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInsufficient = errors.New("insufficient balance")
	ErrUnavailable  = errors.New("unavailable")
)
