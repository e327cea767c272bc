package stake

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// RewardPolicy computes the reward earned by principal over an elapsed window.
//
// Rewards are whole smallest units. What a window earns below one unit is
// returned as a remainder in the policy's own scaled units and handed back as
// carry on the next call, so splitting a window into many settlements pays the
// same as settling it once.
//
// Implementations must be deterministic and must not mutate any state:
// Accrue is invoked while the owner's account is locked, including for
// read-only previews.
type RewardPolicy interface {
	// Name identifies the policy in configuration and logs.
	Name() string
	// Accrue returns the reward for holding principal for elapsed, plus the
	// remainder to carry into the next window.
	Accrue(principal kernel.Amount, elapsed time.Duration, carry kernel.Amount) (reward, remainder kernel.Amount, err error)
}
