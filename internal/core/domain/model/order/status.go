package order

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It implements a state machine
// with a single legal successor per state:
//
//	sent_to_chef -> sent_to_financier -> sent_to_supplier -> chef_checking
//	             -> financier_checking -> completed
//
// The string value is used verbatim on the wire and in persistence.
//
// supplier_collecting and supplier_delivering are declared for forward
// compatibility with a multi-step supplier flow but have no transitions wired;
// they round-trip through persistence yet are never produced by the engine.
type Status string

const (
	StatusSentToChef         Status = "sent_to_chef"
	StatusSentToFinancier    Status = "sent_to_financier"
	StatusSentToSupplier     Status = "sent_to_supplier"
	StatusSupplierCollecting Status = "supplier_collecting"
	StatusSupplierDelivering Status = "supplier_delivering"
	StatusChefChecking       Status = "chef_checking"
	StatusFinancierChecking  Status = "financier_checking"
	StatusCompleted          Status = "completed"
)

// getValidStatuses returns the set of all declared statuses, including the
// reserved supplier ones, to support validation of persisted values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusSentToChef:         {},
		StatusSentToFinancier:    {},
		StatusSentToSupplier:     {},
		StatusSupplierCollecting: {},
		StatusSupplierDelivering: {},
		StatusChefChecking:       {},
		StatusFinancierChecking:  {},
		StatusCompleted:          {},
	}
}

// getNextStatuses returns the transition table: for each status, its single
// legal successor. Statuses absent from the map have no successor.
func getNextStatuses() map[Status]Status {
	return map[Status]Status{
		StatusSentToChef:        StatusSentToFinancier,
		StatusSentToFinancier:   StatusSentToSupplier,
		StatusSentToSupplier:    StatusChefChecking,
		StatusChefChecking:      StatusFinancierChecking,
		StatusFinancierChecking: StatusCompleted,
	}
}

// getStatusActors returns which role may write an order in each status.
// Terminal and reserved statuses have no writer.
func getStatusActors() map[Status]kernel.Role {
	return map[Status]kernel.Role{
		StatusSentToChef:        kernel.RoleChef,
		StatusSentToFinancier:   kernel.RoleFinancier,
		StatusSentToSupplier:    kernel.RoleSupplier,
		StatusChefChecking:      kernel.RoleChef,
		StatusFinancierChecking: kernel.RoleFinancier,
	}
}

// Validate checks that the status is one of the declared values.
// The zero value ("") and any unknown string are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Next returns the single legal successor of the status.
// Returns an error for completed (terminal) and for the reserved supplier
// statuses, which have no transitions wired.
func (s Status) Next() (Status, error) {
	next, ok := getNextStatuses()[s]
	if !ok {
		return "", NewInvalidTransitionError(s, "", fmt.Errorf("%s has no successor", s))
	}
	return next, nil
}

// Actor returns the role permitted to write an order in this status.
// Returns an error for statuses nobody may write (completed and reserved).
func (s Status) Actor() (kernel.Role, error) {
	actor, ok := getStatusActors()[s]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("no role may write an order in status %s", s))
	}
	return actor, nil
}

// IsTerminal reports whether the status ends the workflow.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// ValidateTransitionTo checks that target is the single legal successor of the
// current status without performing the transition.
func (s Status) ValidateTransitionTo(target Status) error {
	next, err := s.Next()
	if err != nil {
		return err
	}
	if next != target {
		return NewInvalidTransitionError(s, target,
			fmt.Errorf("the only legal successor of %s is %s", s, next))
	}
	return nil
}

// InFlightStatuses returns every status an unfinished order can be in,
// reserved statuses included. A branch may have at most one order in any of
// these statuses at a time.
func InFlightStatuses() []Status {
	return []Status{
		StatusSentToChef,
		StatusSentToFinancier,
		StatusSentToSupplier,
		StatusSupplierCollecting,
		StatusSupplierDelivering,
		StatusChefChecking,
		StatusFinancierChecking,
	}
}

// ActiveStatusesFor returns the statuses that make an order "active" from the
// given role's point of view. Orders in any other status are either another
// role's work or archived.
func ActiveStatusesFor(role kernel.Role) []Status {
	switch role {
	case kernel.RoleChef:
		return []Status{StatusSentToChef, StatusChefChecking}
	case kernel.RoleFinancier:
		return []Status{StatusSentToFinancier, StatusFinancierChecking}
	case kernel.RoleSupplier:
		return []Status{StatusSentToSupplier}
	default:
		return nil
	}
}
