// Package stake holds the staking account aggregate: the principal an owner has
// locked with the staking engine, the rewards accrued on it, and the point in
// time up to which accrual has been settled.
//
// Reward accrual is delegated to a RewardPolicy so that the engine can switch
// between reward models without touching the account rules.
package stake
