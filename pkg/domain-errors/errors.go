// Package domainerrors carries typed error codes from services to transports.
//
// Services construct errors with New or Wrap; transports translate the code
// into a response without inspecting messages. Every rejected ledger call
// surfaces exactly one code.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure.
type Code string

// Generic codes.
const (
	CodeBadRequest      Code = "bad_request"
	CodeInvalidInput    Code = "invalid_input"
	CodeNotFound        Code = "not_found"
	CodeUnauthenticated Code = "unauthenticated"
	CodeTimeout         Code = "timeout"
	CodeRateLimited     Code = "rate_limit_exceeded"
	CodeInternal        Code = "internal_error"
)

// Ledger codes. Each is a precondition violation that rejects the whole call.
const (
	CodeUnauthorized                Code = "unauthorized"
	CodeContractPaused              Code = "contract_paused"
	CodeCallerNotAuthorized         Code = "caller_not_authorized"
	CodeAlreadyFunded               Code = "already_funded"
	CodeInsufficientFunds           Code = "insufficient_funds"
	CodeAlreadyExists               Code = "already_exists"
	CodeFounderRequiredForFirstFour Code = "founder_required_for_first_four"
	CodeSponsorNotRegistered        Code = "sponsor_not_registered"
	CodeDuplicateVote               Code = "duplicate_vote"
	CodeAirlineNotRegistered        Code = "airline_not_registered"
	CodeAirlineNotFunded            Code = "airline_not_funded"
	CodeFlightAlreadyExists         Code = "flight_already_exists"
	CodeFlightUnknown               Code = "flight_unknown"
	CodePolicyAlreadyExists         Code = "policy_already_exists"
	CodePaymentExceedsCap           Code = "payment_exceeds_cap"
	CodeNoCreditsOwed               Code = "no_credits_owed"
	CodeOracleNotEligible           Code = "oracle_not_eligible"
	CodeAlreadyRegistered           Code = "already_registered"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code to an underlying error. A nil err still yields a coded error.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the outermost code in the chain, or CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the outermost coded message, or a generic message.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}
