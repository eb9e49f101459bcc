package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the workflow engine. Both are terminal for the call that
// produced them: the order value is left unmodified and the caller surfaces
// the failure to the user.
var (
	// ErrInvalidTransition is the target of errors.Is checks for any
	// transition whose target status or acting role is not permitted.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrValidation is the target of errors.Is checks for transition-specific
	// precondition failures.
	ErrValidation = errors.New("validation failed")
)

// InvalidTransitionError reports a transition to a status that is not the sole
// legal successor of the current one, or an actor that is not the permitted
// writer for the current status.
type InvalidTransitionError struct {
	From  Status
	To    Status
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError with an
// underlying cause. To may be empty when the current status has no successor.
func NewInvalidTransitionError(from, to Status, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("%s: from %s (cause: %s)", ErrInvalidTransition, e.From, e.Cause)
	}
	return fmt.Sprintf("%s: from %s to %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationReason classifies why a transition's precondition failed.
type ValidationReason string

const (
	// ReasonEmptyOrder: a chef submission where every product has quantity 0.
	ReasonEmptyOrder ValidationReason = "empty_order"

	// ReasonMissingPrices: a supplier handoff with an ordered product lacking
	// a positive price.
	ReasonMissingPrices ValidationReason = "missing_prices"

	// ReasonNegativeQuantity: an incoming edit or snapshot carrying a
	// negative quantity. Quantities are clamped at the UI; the engine rejects
	// them anyway.
	ReasonNegativeQuantity ValidationReason = "negative_quantity"
)

// ValidationError reports a transition-specific precondition failure.
type ValidationError struct {
	Reason ValidationReason
	Cause  error
}

// NewValidationError creates a ValidationError for the given reason.
func NewValidationError(reason ValidationReason, cause error) *ValidationError {
	return &ValidationError{Reason: reason, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
