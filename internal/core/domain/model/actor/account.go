package actor

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount or RestoreAccount factory methods.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is a registered actor in the distribution network: a restaurant,
// driver, or admin known to the actor directory. The directory is what the
// assignment step consults to check that a target driver exists, holds the
// driver role, and is active.
type Account struct {
	id       kernel.UUID
	name     string
	role     Role
	isActive bool

	guard kernel.ConstructorGuard
}

// NewAccount registers a new active account.
func NewAccount(id kernel.UUID, name string, role Role) (*Account, error) {
	account := &Account{
		isActive: true,
		guard:    kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(id kernel.UUID, name string, role Role, isActive bool) (*Account, error) {
	account, err := NewAccount(id, name, role)
	if err != nil {
		return nil, err
	}
	account.isActive = isActive
	return account, nil
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// IsActive reports whether the account may take part in operations.
func (a *Account) IsActive() bool {
	return a.isActive
}

// IsActiveDriver reports whether the account is an active driver.
func (a *Account) IsActiveDriver() bool {
	return a.isActive && a.role == RoleDriver
}

// Deactivate marks the account inactive. Inactive drivers are not eligible
// for assignment.
func (a *Account) Deactivate() {
	a.isActive = false
}

// Activate marks the account active again.
func (a *Account) Activate() {
	a.isActive = true
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
