package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Role is the kind of actor working an order. Roles are supplied by the caller
// and trusted as given; the workflow decides which role may write in which
// status.
type Role string

const (
	RoleChef      Role = "chef"
	RoleFinancier Role = "financier"
	RoleSupplier  Role = "supplier"
)

// Roles returns all known roles in workflow order.
func Roles() []Role {
	return []Role{RoleChef, RoleFinancier, RoleSupplier}
}

// Validate checks that the role is one of the known actor kinds.
func (r Role) Validate() error {
	switch r {
	case RoleChef, RoleFinancier, RoleSupplier:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known role", string(r)))
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
