package sim

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/protolambda/zrnt/eth2/beacon/common"
)

// ProposerSet holds the validators picked to propose during one epoch.
type ProposerSet map[common.ValidatorIndex]struct{}

func (s ProposerSet) Contains(index common.ValidatorIndex) bool {
	_, ok := s[index]
	return ok
}

// Indices returns the members in ascending order.
func (s ProposerSet) Indices() []common.ValidatorIndex {
	indices := make([]common.ValidatorIndex, 0, len(s))
	for index := range s {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// SelectProposers draws ProposersPerEpoch distinct active, unslashed validators.
// Candidates are sampled uniformly and accepted with probability
// effective_balance/MAX_EFFECTIVE_BALANCE, so heavier validators propose more often.
func SelectProposers(params Params, validators []Validator, rng Rand) (ProposerSet, error) {
	want := params.ProposersPerEpoch

	var eligible uint64
	for i := range validators {
		if validators[i].IsEligibleProposer() {
			eligible++
		}
	}
	if eligible < want {
		return nil, errors.Wrapf(ErrInsufficientProposers, "%d eligible validators, need %d", eligible, want)
	}

	proposers := make(ProposerSet, want)
	for uint64(len(proposers)) < want {
		candidate := rng.Intn(len(validators))
		v := &validators[candidate]
		index := common.ValidatorIndex(candidate)
		if !v.IsEligibleProposer() || proposers.Contains(index) {
			continue
		}

		randomByte := uint64(rng.Intn(RANDOM_BYTE_MAX + 1))
		if uint64(v.EffectiveBalance)*RANDOM_BYTE_MAX >= randomByte*uint64(params.MaxEffectiveBalance) {
			proposers[index] = struct{}{}
		}
	}

	return proposers, nil
}
