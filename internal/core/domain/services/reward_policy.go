package services

import (
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/pkg/errs"
)

const (
	RewardModelProportional = "proportional"
	RewardModelFlat         = "flat"

	// BasisPoints is the denominator of ProportionalRewardPolicy rates.
	BasisPoints uint64 = 10_000

	// DefaultRewardRateBps pays 1% of principal per second: 100 staked for
	// 10 seconds earns 10.
	DefaultRewardRateBps uint64 = 100

	nanosPerSecond = uint64(time.Second)
)

var (
	_ stake.RewardPolicy = ProportionalRewardPolicy{}
	_ stake.RewardPolicy = FlatRewardPolicy{}
)

// ProportionalRewardPolicy accrues principal * rateBps / 10000 per second.
//
// The window is measured in nanoseconds, so the reward of a window is
// principal * rateBps * nanoseconds / 10^13. The remainder of that division
// is carried into the next window instead of being dropped.
type ProportionalRewardPolicy struct {
	rateBps uint64
}

// NewProportionalRewardPolicy returns a policy paying rateBps basis points of the
// principal per second.
func NewProportionalRewardPolicy(rateBps uint64) ProportionalRewardPolicy {
	return ProportionalRewardPolicy{rateBps: rateBps}
}

func (p ProportionalRewardPolicy) Name() string { return RewardModelProportional }

func (p ProportionalRewardPolicy) RateBps() uint64 { return p.rateBps }

func (p ProportionalRewardPolicy) Accrue(
	principal kernel.Amount,
	elapsed time.Duration,
	carry kernel.Amount,
) (kernel.Amount, kernel.Amount, error) {
	if elapsed <= 0 || p.rateBps == 0 {
		return kernel.ZeroAmount(), carry, nil
	}
	r, err := principal.MulUint64(p.rateBps)
	if err != nil {
		return kernel.Amount{}, kernel.Amount{}, err
	}
	return payOut(r, elapsed, carry, BasisPoints*nanosPerSecond)
}

// FlatRewardPolicy accrues a fixed amount per second to any non-zero
// principal, independent of its size.
type FlatRewardPolicy struct {
	perSecond kernel.Amount
}

func NewFlatRewardPolicy(perSecond kernel.Amount) FlatRewardPolicy {
	return FlatRewardPolicy{perSecond: perSecond}
}

func (p FlatRewardPolicy) Name() string { return RewardModelFlat }

func (p FlatRewardPolicy) Accrue(
	principal kernel.Amount,
	elapsed time.Duration,
	carry kernel.Amount,
) (kernel.Amount, kernel.Amount, error) {
	if principal.IsZero() || elapsed <= 0 {
		return kernel.ZeroAmount(), carry, nil
	}
	return payOut(p.perSecond, elapsed, carry, nanosPerSecond)
}

// payOut divides rate * elapsed nanoseconds + carry by denominator and
// returns the quotient as the reward and the rest as the remainder.
func payOut(rate kernel.Amount, elapsed time.Duration, carry kernel.Amount, denominator uint64) (kernel.Amount, kernel.Amount, error) {
	scaled, err := rate.MulUint64(uint64(elapsed))
	if err != nil {
		return kernel.Amount{}, kernel.Amount{}, err
	}
	if scaled, err = scaled.Add(carry); err != nil {
		return kernel.Amount{}, kernel.Amount{}, err
	}
	return scaled.DivModUint64(denominator)
}

// NewRewardPolicy builds the policy named by model.
func NewRewardPolicy(model string, rateBps uint64, flatPerSecond kernel.Amount) (stake.RewardPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(model)) {
	case "", RewardModelProportional:
		return NewProportionalRewardPolicy(rateBps), nil
	case RewardModelFlat:
		return NewFlatRewardPolicy(flatPerSecond), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("reward model",
			fmt.Errorf("%q is not one of %s, %s", model, RewardModelProportional, RewardModelFlat))
	}
}
