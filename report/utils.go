package report

import (
	"github.com/protolambda/zrnt/eth2/beacon/common"

	"github.com/pk910/beacon_go_reward_simulator/sim"
)

// balanceStats returns the lowest, highest and mean balance of the set.
// An empty set yields zeros.
func balanceStats(validators []sim.Validator) (min, max common.Gwei, avg float64) {
	if len(validators) == 0 {
		return 0, 0, 0
	}

	min, max = validators[0].Balance, validators[0].Balance
	var sum common.Gwei
	for i := range validators {
		balance := validators[i].Balance
		min = sim.MinGwei(min, balance)
		max = sim.MaxGwei(max, balance)
		sum += balance
	}
	return min, max, float64(sum) / float64(len(validators))
}

func gweiToEth(gwei common.Gwei) float64 {
	return float64(gwei) / 1e9
}
