package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// 5XX
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	// InvalidShare signals an invariant breach inside the claim engine. It is
	// a bug, never a user error, and always surfaces as a 500.
	InvalidShare ErrorCode = "INVALID_SHARE"

	ValidationError ErrorCode = "VALIDATION_ERROR"
	NotFound        ErrorCode = "NOT_FOUND"
	BadRequest      ErrorCode = "BAD_REQUEST"
	Forbidden       ErrorCode = "FORBIDDEN"
	RequestTimeout  ErrorCode = "REQUEST_TIMEOUT"

	// Bonding entry point errors
	Unauthorized           ErrorCode = "UNAUTHORIZED"
	InvalidBondingAsset    ErrorCode = "INVALID_BONDING_ASSET"
	InvalidZeroAmount      ErrorCode = "INVALID_ZERO_AMOUNT"
	InvalidUnbondingAmount ErrorCode = "INVALID_UNBONDING_AMOUNT"
	InsufficientBond       ErrorCode = "INSUFFICIENT_BOND"
	NothingToUnbond        ErrorCode = "NOTHING_TO_UNBOND"
	NothingToClaim         ErrorCode = "NOTHING_TO_CLAIM"
	// UnclaimedRewards rejects a bond or unbond while the address still has
	// claimable reward buckets. Settling those buckets uses the position as
	// it stood at each bucket's snapshot, so the position must not move
	// until they are claimed.
	UnclaimedRewards ErrorCode = "UNCLAIMED_REWARDS"
)

// Error represents an error with an HTTP status code and an application-specific error code.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

const UninitializedStatusCode = 0

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewError creates a new Error with the provided status code, error code, and underlying error.
// If the status code is not provided (0), it defaults to http.StatusInternalServerError(500).
// If the error code is empty, it defaults to INTERNAL_SERVICE_ERROR.
func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	if statusCode == UninitializedStatusCode {
		statusCode = http.StatusInternalServerError
	}
	if errorCode == "" {
		errorCode = InternalServiceError
	}
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}
