package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrClaimRewardCommandIsNotConstructed = errors.New(
	"ClaimRewardCommand must be created via NewClaimRewardCommand constructor",
)

// ClaimRewardCommand pays out everything the owner has accrued so far.
type ClaimRewardCommand struct { //nolint:recvcheck //using for validation
	owner kernel.Address

	guard guard.ConstructorGuard
}

func NewClaimRewardCommand(owner kernel.Address) (ClaimRewardCommand, error) {
	if err := validateOwner(owner); err != nil {
		return ClaimRewardCommand{}, err
	}
	return ClaimRewardCommand{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (c ClaimRewardCommand) Validate() error {
	return c.guard.Validate(ErrClaimRewardCommandIsNotConstructed)
}

func (c ClaimRewardCommand) Owner() kernel.Address { return c.owner }
