// Package actorrepo provides data transfer objects and mapping functions for
// actor directory persistence.
package actorrepo

import (
	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting directory accounts.
type AccountDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null"`
	Role     string    `gorm:"type:varchar(16);index"`
	IsActive bool
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "actors".
func (AccountDTO) TableName() string {
	return "actors"
}

// fromDomain converts an account to its database representation.
func fromDomain(account *actor.Account) AccountDTO {
	return AccountDTO{
		ID:       account.ID().Bytes(),
		Name:     account.Name(),
		Role:     account.Role().String(),
		IsActive: account.IsActive(),
	}
}

// toDomain converts a database DTO to an account using RestoreAccount.
func toDomain(dto AccountDTO) (*actor.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return actor.RestoreAccount(id, dto.Name, role, dto.IsActive)
}
