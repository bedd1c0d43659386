package sim

import (
	"github.com/protolambda/zrnt/eth2/beacon/common"
)

// State is the validator set between two epoch transitions.
type State struct {
	Epoch      common.Epoch
	Validators []Validator
}

func NewState() *State {
	return &State{
		Validators: make([]Validator, 0),
	}
}

// NewGenesisState splits the initial stake into max effective balance
// validators. The first SlashedPercent of them start slashed, the next
// InactivePercent start inactive.
func NewGenesisState(cfg *Config) *State {
	state := NewState()

	validatorCount := cfg.TotalAtStakeInitial / uint64(cfg.Params.MaxEffectiveBalance)
	endIdxSlashed := cfg.SlashedPercent * validatorCount / 100
	endIdxInactive := endIdxSlashed + cfg.InactivePercent*validatorCount/100

	state.Validators = make([]Validator, 0, validatorCount)
	for i := uint64(0); i < validatorCount; i++ {
		validator := NewValidator(cfg.Params)
		if i < endIdxSlashed {
			validator.IsSlashed = true
		} else if i < endIdxInactive {
			validator.IsActive = false
		}
		state.AddValidator(validator)
	}
	return state
}

func (s *State) AddValidator(v Validator) {
	s.Validators = append(s.Validators, v)
}

func (s *State) Copy() *State {
	validators := make([]Validator, len(s.Validators))
	copy(validators, s.Validators)
	return &State{
		Epoch:      s.Epoch,
		Validators: validators,
	}
}

// Balances returns the balance of every validator, in index order.
func (s *State) Balances() []uint64 {
	balances := make([]uint64, len(s.Validators))
	for i := range s.Validators {
		balances[i] = uint64(s.Validators[i].Balance)
	}
	return balances
}
