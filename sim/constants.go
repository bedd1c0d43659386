package sim

import (
	"github.com/protolambda/zrnt/eth2/beacon/common"
	"github.com/protolambda/zrnt/eth2/configs"
)

const (
	BASE_REWARDS_PER_EPOCH       = 4
	HYSTERESIS_UPWARD_MULTIPLIER = 3
	RANDOM_BYTE_MAX              = 255
	SECONDS_PER_SLOT             = 12
	PRESET_MAINNET               = "mainnet"
	PRESET_MINIMAL               = "minimal"
	DEFAULT_LOG_INTERVAL         = 100

	// FFG balances are shifted right by this many bits before the reward
	// multiply-divide so 3*base_reward*matching_balance stays within 64 bits.
	BALANCE_SHAVE_BITS = 5
)

// Params are the protocol constants the incentive model is evaluated with.
type Params struct {
	MaxEffectiveBalance       common.Gwei
	EffectiveBalanceIncrement common.Gwei
	BaseRewardFactor          uint64
	BaseRewardsPerEpoch       uint64
	ProposerRewardQuotient    uint64
	// One proposer per slot.
	ProposersPerEpoch uint64
}

// ParamsFromSpec picks the constants used by the simulation out of a beacon chain preset.
func ParamsFromSpec(spec *common.Spec) Params {
	return Params{
		MaxEffectiveBalance:       spec.MAX_EFFECTIVE_BALANCE,
		EffectiveBalanceIncrement: spec.EFFECTIVE_BALANCE_INCREMENT,
		BaseRewardFactor:          uint64(spec.BASE_REWARD_FACTOR),
		BaseRewardsPerEpoch:       BASE_REWARDS_PER_EPOCH,
		ProposerRewardQuotient:    uint64(spec.PROPOSER_REWARD_QUOTIENT),
		ProposersPerEpoch:         uint64(spec.SLOTS_PER_EPOCH),
	}
}

// PresetSpec resolves a preset name to its zrnt chain config, nil if unknown.
func PresetSpec(name string) *common.Spec {
	switch name {
	case PRESET_MAINNET, "":
		return configs.Mainnet
	case PRESET_MINIMAL:
		return configs.Minimal
	}
	return nil
}

// HalfIncrement is the hysteresis unit: effective balance moves up once the
// balance exceeds it by 3 half increments.
func (p Params) HalfIncrement() common.Gwei {
	return p.EffectiveBalanceIncrement / 2
}

// EpochsPerYear is used to annualise rewards in reports.
func (p Params) EpochsPerYear() float64 {
	return float64(365*24*60*60) / float64(SECONDS_PER_SLOT*p.ProposersPerEpoch)
}
