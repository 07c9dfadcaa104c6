package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	_, ok := err.(*DuplicateKeyError)
	return ok
}

// InvalidPaginationTokenError is an error type for invalid pagination token errors
type InvalidPaginationTokenError struct {
	Message string
}

func (e *InvalidPaginationTokenError) Error() string {
	return e.Message
}

func IsInvalidPaginationTokenError(err error) bool {
	_, ok := err.(*InvalidPaginationTokenError)
	return ok
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// InsufficientBondError is returned when an unbond request exceeds the
// currently bonded amount.
type InsufficientBondError struct {
	Key     string
	Message string
}

func (e *InsufficientBondError) Error() string {
	return e.Message
}

func IsInsufficientBondError(err error) bool {
	_, ok := err.(*InsufficientBondError)
	return ok
}

// InvariantViolationError signals a broken accounting invariant such as a
// reward share exceeding a bucket's available balance. It is a bug, not a
// user error.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return e.Message
}

func IsInvariantViolationError(err error) bool {
	_, ok := err.(*InvariantViolationError)
	return ok
}

// Error code references: https://www.mongodb.com/docs/manual/reference/error-codes/
func IsWriteConflictError(err error) bool {
	if err == nil {
		return false
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 112
	}
	return false
}

func IsTransactionAbortedError(err error) bool {
	if err == nil {
		return false
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 251
	}
	return false
}
