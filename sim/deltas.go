package sim

import (
	"math"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/protolambda/zrnt/eth2/beacon/common"
)

// Deltas is the reward and penalty breakdown of one validator in one epoch.
type Deltas struct {
	HeadFFGReward  common.Gwei
	HeadFFGPenalty common.Gwei
	ProposerReward common.Gwei
	AttesterReward common.Gwei
}

func (d Deltas) Add(other Deltas) Deltas {
	return Deltas{
		HeadFFGReward:  d.HeadFFGReward + other.HeadFFGReward,
		HeadFFGPenalty: d.HeadFFGPenalty + other.HeadFFGPenalty,
		ProposerReward: d.ProposerReward + other.ProposerReward,
		AttesterReward: d.AttesterReward + other.AttesterReward,
	}
}

// Rewards is the sum of all positive deltas.
func (d Deltas) Rewards() common.Gwei {
	return d.HeadFFGReward + d.ProposerReward + d.AttesterReward
}

// GetAttestationDeltas computes the deltas of a validator given its activity in
// the epoch and the pre-transition totals.
func GetAttestationDeltas(cfg *Config, v *Validator, activity Activity, baseReward common.Gwei, totals *EpochTotals) (Deltas, error) {
	var deltas Deltas
	if !v.IsActive {
		return deltas, nil
	}

	if v.IsSlashed || !activity.HasMatchedSource {
		deltas.HeadFFGPenalty = 3 * baseReward
		return deltas, nil
	}

	reward, err := ffgReward(baseReward, totals.MatchingBalance, totals.ActiveBalance)
	if err != nil {
		return deltas, err
	}
	deltas.HeadFFGReward = reward

	if activity.IsProposer {
		deltas.ProposerReward = proposerReward(cfg, baseReward, totals.ActiveValidators)
	}
	deltas.AttesterReward = attesterReward(cfg, baseReward)

	return deltas, nil
}

// ffgReward is 3*base_reward*matching/active with both balances shaved by
// BALANCE_SHAVE_BITS. The product is checked in 256 bits.
func ffgReward(baseReward, matchingBalance, activeBalance common.Gwei) (common.Gwei, error) {
	shavedMatching := uint64(matchingBalance) >> BALANCE_SHAVE_BITS
	shavedActive := uint64(activeBalance) >> BALANCE_SHAVE_BITS
	if shavedActive == 0 {
		return 0, nil
	}

	product := new(uint256.Int).Mul(uint256.NewInt(3), uint256.NewInt(uint64(baseReward)))
	product.Mul(product, uint256.NewInt(shavedMatching))
	if !product.IsUint64() {
		return 0, errors.Wrapf(ErrRewardOverflow, "base reward %d, shaved matching balance %d", baseReward, shavedMatching)
	}
	return common.Gwei(product.Uint64() / shavedActive), nil
}

func proposerReward(cfg *Config, baseReward common.Gwei, activeValidators uint64) common.Gwei {
	amount := baseReward / common.Gwei(cfg.Params.ProposerRewardQuotient)
	attesters := activeValidators / cfg.Params.ProposersPerEpoch
	attestations := math.Floor(float64(attesters) * cfg.ProbabilityOnline * cfg.ProbabilityHonest)
	return amount * common.Gwei(attestations)
}

func attesterReward(cfg *Config, baseReward common.Gwei) common.Gwei {
	maxReward := baseReward - baseReward/common.Gwei(cfg.Params.ProposerRewardQuotient)
	return common.Gwei(math.Floor(float64(maxReward) * cfg.ExpValueInclusionProb))
}
