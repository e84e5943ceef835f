package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// The executor maps the unique violation on the idempotency key to this error; the
// ledger service recovers it by replaying the winning transaction.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflictInFlight indicates that a prior attempt with the same idempotency key
// is still PENDING; the caller must not retry yet.
var ErrConflictInFlight = errors.New("a transaction with this idempotency key is still in progress")

// ErrLedgerImmutable indicates an attempted mutation of a persisted ledger entry.
// This is a programmer error and is fatal to the request.
var ErrLedgerImmutable = errors.New("ledger entries are immutable once written")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// InsufficientBalanceError is returned when a source wallet holds less than the
// requested amount. The enclosing storage transaction is rolled back, so the
// idempotency key stays free for a corrected retry.
type InsufficientBalanceError struct {
	WalletID  string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on wallet %s: available %s, required %s",
		e.WalletID, e.Available.String(), e.Required.String())
}

// TerminallyFailedError is returned by the idempotency gate when the key resolves
// to a FAILED transaction; it echoes the recorded failure reason.
type TerminallyFailedError struct {
	IdempotencyKey string
	Message        string
}

func (e *TerminallyFailedError) Error() string {
	return fmt.Sprintf("transaction with idempotency key %s failed terminally: %s", e.IdempotencyKey, e.Message)
}

// AppError wraps a lower-level failure (typically from storage) with a status
// code hint and a message suitable for logging.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
