package sim

import "github.com/protolambda/zrnt/eth2/beacon/common"

// SimulateActivity draws whether the validator was online and honest this epoch.
// Both draws are always taken, so the random stream consumed per validator does
// not depend on its flags.
func SimulateActivity(cfg *Config, v *Validator, index common.ValidatorIndex, proposers ProposerSet, rng Rand) Activity {
	hasBeenOnline := cfg.ProbabilityOnline > rng.Float64()
	hasBeenHonest := cfg.ProbabilityHonest > rng.Float64()
	hasMatchedSource := !v.IsSlashed && hasBeenOnline && hasBeenHonest

	return Activity{
		HasMatchedSource: hasMatchedSource,
		HasMatchedTarget: hasMatchedSource,
		HasMatchedHead:   hasMatchedSource,
		IsProposer:       proposers.Contains(index),
	}
}
