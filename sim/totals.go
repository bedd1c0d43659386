package sim

import (
	"github.com/protolambda/zrnt/eth2/beacon/common"
	"github.com/protolambda/zrnt/eth2/util/math"
)

// EpochTotals are the aggregates of a validator set before an epoch transition.
// All per-validator computations of the epoch read the same snapshot.
type EpochTotals struct {
	StakedBalance     common.Gwei
	ActiveBalance     common.Gwei
	SqrtActiveBalance uint64
	// Effective balance of active, unslashed validators.
	MatchingBalance   common.Gwei
	MaxBalance        common.Gwei
	MinBalance        common.Gwei
	Validators        uint64
	ActiveValidators  uint64
	SlashedValidators uint64
}

func ComputeEpochTotals(validators []Validator) EpochTotals {
	totals := EpochTotals{
		Validators: uint64(len(validators)),
	}
	if len(validators) == 0 {
		return totals
	}

	totals.MinBalance = validators[0].Balance
	for i := range validators {
		v := &validators[i]
		totals.StakedBalance += v.Balance
		totals.MaxBalance = MaxGwei(totals.MaxBalance, v.Balance)
		totals.MinBalance = MinGwei(totals.MinBalance, v.Balance)
		if v.IsSlashed {
			totals.SlashedValidators++
		}
		if !v.IsActive {
			continue
		}
		totals.ActiveValidators++
		totals.ActiveBalance += v.EffectiveBalance
		if !v.IsSlashed {
			totals.MatchingBalance += v.EffectiveBalance
		}
	}
	totals.SqrtActiveBalance = math.IntegerSquareroot(uint64(totals.ActiveBalance))

	return totals
}
