package actor

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation.
// The set of roles is closed: administrators run the distribution side,
// restaurants place orders, drivers deliver them.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin is a distributor-side administrator who confirms,
	// prices, and assigns orders.
	RoleAdmin

	// RoleRestaurant is a customer who places and completes orders.
	RoleRestaurant

	// RoleDriver delivers assigned orders.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleAdmin:      "admin",
		RoleRestaurant: "restaurant",
		RoleDriver:     "driver",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:      "admin",
		RoleRestaurant: "restaurant",
		RoleDriver:     "driver",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are: admin, restaurant, driver.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role.
// It implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a role from its string representation, as supplied
// by the authentication layer. Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// AllRoles returns every valid role. Useful for exhaustive table checks.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleRestaurant, RoleDriver}
}
