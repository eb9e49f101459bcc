package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Branch identifies the physical site an order is placed from.
// The set of branches is fixed; a Branch is immutable for the lifetime of an
// order. The string value is used verbatim on the wire and in persistence.
type Branch string

const (
	BranchChilanzar   Branch = "chilanzar"
	BranchUchtepa     Branch = "uchtepa"
	BranchShayzantaur Branch = "shayzantaur"
	BranchOlmazar     Branch = "olmazar"
)

// Branches returns all known branches in a stable order.
func Branches() []Branch {
	return []Branch{BranchChilanzar, BranchUchtepa, BranchShayzantaur, BranchOlmazar}
}

// Validate checks that the branch is one of the known sites.
// The zero value ("") and any unknown string are invalid.
func (b Branch) Validate() error {
	switch b {
	case BranchChilanzar, BranchUchtepa, BranchShayzantaur, BranchOlmazar:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("branch",
			fmt.Errorf("%q is not a known branch", string(b)))
	}
}

// String implements fmt.Stringer.
func (b Branch) String() string {
	return string(b)
}
