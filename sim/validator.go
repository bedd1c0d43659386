package sim

import (
	"github.com/protolambda/zrnt/eth2/beacon/common"
)

// Validator is the persistent per-validator record carried from epoch to epoch.
type Validator struct {
	Balance          common.Gwei
	EffectiveBalance common.Gwei
	IsActive         bool
	IsSlashed        bool
}

// Activity holds what a validator did during one epoch. It is drawn fresh
// every epoch and discarded after the validator's deltas are applied.
type Activity struct {
	HasMatchedSource bool
	HasMatchedTarget bool
	HasMatchedHead   bool
	IsProposer       bool
}

func NewValidator(params Params) Validator {
	return Validator{
		Balance:          params.MaxEffectiveBalance,
		EffectiveBalance: params.MaxEffectiveBalance,
		IsActive:         true,
	}
}

// IsEligibleProposer reports whether the validator may be picked to propose.
func (v *Validator) IsEligibleProposer() bool {
	return v.IsActive && !v.IsSlashed
}

// BaseReward is effective_balance * BASE_REWARD_FACTOR / sqrt(active) / BASE_REWARDS_PER_EPOCH.
func (v *Validator) BaseReward(params Params, sqrtActiveBalance uint64) common.Gwei {
	if sqrtActiveBalance == 0 {
		return 0
	}
	return common.Gwei(uint64(v.EffectiveBalance) * params.BaseRewardFactor / sqrtActiveBalance / params.BaseRewardsPerEpoch)
}

// ApplyDeltas returns a copy of the validator with the epoch's deltas booked.
// A penalty larger than the balance leaves the balance at zero.
func (v Validator) ApplyDeltas(deltas Deltas) Validator {
	credit := v.Balance + deltas.Rewards()
	if deltas.HeadFFGPenalty >= credit {
		v.Balance = 0
	} else {
		v.Balance = credit - deltas.HeadFFGPenalty
	}
	return v
}

// UpdateEffectiveBalance moves the effective balance onto the increment grid
// when the balance dropped below it or rose more than 1.5 increments above it.
func (v *Validator) UpdateEffectiveBalance(params Params) {
	upwardThreshold := params.HalfIncrement() * HYSTERESIS_UPWARD_MULTIPLIER

	balance := v.Balance
	if balance < v.EffectiveBalance || v.EffectiveBalance+upwardThreshold < balance {
		v.EffectiveBalance = MinGwei(balance-balance%params.EffectiveBalanceIncrement, params.MaxEffectiveBalance)
	}
}
