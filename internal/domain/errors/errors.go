// Package errors defines the application error taxonomy shared by the
// settlement engine and the delivery layer.
package errors

import (
	"net/http"

	"datadex/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business code, so a WithDetails copy still matches
// its template under errors.Is.
func (e *BaseError) Is(target error) bool {
	var appErr AppError
	if !errors.As(target, &appErr) {
		return false
	}

	return e.errorCode == appErr.ErrorCode()
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authorization
	ErrNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHORIZED",
		"caller is not authorized for this operation",
		"",
	)

	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"invalid argument",
		"",
	)

	// Ledger
	ErrInsufficientBalance = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_BALANCE",
		"balance is insufficient for this operation",
		"",
	)

	ErrMintPaused = NewBaseError(
		http.StatusConflict,
		"MINT_PAUSED",
		"minting is currently paused",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrReceiptNotFound = NewBaseError(
		http.StatusNotFound,
		"RECEIPT_NOT_FOUND",
		"receipt not found",
		"",
	)

	ErrBurnNotFound = NewBaseError(
		http.StatusNotFound,
		"BURN_NOT_FOUND",
		"burn request not found",
		"",
	)

	ErrUnknownRecipient = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNKNOWN_RECIPIENT",
		"recipient is not a settlement component",
		"",
	)

	// Marketplace
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"store not found",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"item not found",
		"",
	)

	ErrStoreAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"STORE_ALREADY_REGISTERED",
		"store is already registered",
		"",
	)

	ErrNotForSale = NewBaseError(
		http.StatusConflict,
		"NOT_FOR_SALE",
		"item is not for sale",
		"",
	)

	ErrPriceMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"PRICE_MISMATCH",
		"payment does not cover the current price",
		"",
	)

	ErrAlreadyPurchased = NewBaseError(
		http.StatusConflict,
		"ALREADY_PURCHASED",
		"buyer already holds purchase rights for this item",
		"",
	)

	// Orders
	ErrActiveOrderExists = NewBaseError(
		http.StatusConflict,
		"ACTIVE_ORDER_EXISTS",
		"address already has an active order",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrOrderNotActive = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_ACTIVE",
		"order is not active",
		"",
	)

	// Registry
	ErrRateUnset = NewBaseError(
		http.StatusUnprocessableEntity,
		"RATE_UNSET",
		"exchange rate has not been set",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transactions
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
