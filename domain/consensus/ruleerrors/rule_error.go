package ruleerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrDuplicateBlock indicates a block with the same id already
	// exists.
	ErrDuplicateBlock = newRuleError("ErrDuplicateBlock")

	// ErrEmptyBlockID indicates a block without an id.
	ErrEmptyBlockID = newRuleError("ErrEmptyBlockID")

	// ErrBlockNotFound indicates that a block id is unknown.
	ErrBlockNotFound = newRuleError("ErrBlockNotFound")

	// ErrInvalidParentSet indicates that a non-genesis block has no
	// parents, or lists the same parent twice.
	ErrInvalidParentSet = newRuleError("ErrInvalidParentSet")

	// ErrUnclassifiedParent indicates that a parent has no GHOSTDAG data.
	ErrUnclassifiedParent = newRuleError("ErrUnclassifiedParent")

	// ErrAccountExists indicates an attempt to create an account twice.
	ErrAccountExists = newRuleError("ErrAccountExists")

	// ErrAccountNotFound indicates that an account id is unknown.
	ErrAccountNotFound = newRuleError("ErrAccountNotFound")

	// ErrInsufficientBalance indicates that a sender cannot cover the
	// transferred amount.
	ErrInsufficientBalance = newRuleError("ErrInsufficientBalance")

	// ErrInvalidNonce indicates that a transaction nonce differs from the
	// sender's current nonce.
	ErrInvalidNonce = newRuleError("ErrInvalidNonce")

	// ErrInvalidAmount indicates a transaction that transfers nothing.
	ErrInvalidAmount = newRuleError("ErrInvalidAmount")

	// ErrBalanceOverflow indicates that crediting the receiver would
	// overflow its balance.
	ErrBalanceOverflow = newRuleError("ErrBalanceOverflow")

	// ErrBlockNotExecuted indicates an attempt to revert a block that has
	// no execution record.
	ErrBlockNotExecuted = newRuleError("ErrBlockNotExecuted")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or transaction failed due to one of the many
// validation rules. The caller can use type assertions to determine if
// a failure was specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrMissingParents indicates a block points to unknown parent(s).
type ErrMissingParents struct {
	MissingParentIDs []string
}

func (e ErrMissingParents) Error() string {
	return fmt.Sprintf("missing the following parents: %v", e.MissingParentIDs)
}

// NewErrMissingParents creates a new ErrMissingParents error wrapped in a RuleError
func NewErrMissingParents(missingParentIDs []string) error {
	return errors.WithStack(RuleError{
		message: "ErrMissingParents",
		inner:   ErrMissingParents{missingParentIDs},
	})
}

// IsRuleError returns whether err is, or wraps, a RuleError.
func IsRuleError(err error) bool {
	return errors.As(err, &RuleError{})
}
