package sim

import (
	"context"

	"github.com/pkg/errors"
	"github.com/protolambda/zrnt/eth2/beacon/common"
	"golang.org/x/sync/errgroup"

	"github.com/pk910/beacon_go_reward_simulator/logger"
)

// Observer receives every closed report row while a simulation runs.
type Observer interface {
	ObserveEpoch(row EpochReportRow)
}

// Simulator runs epoch transitions over a validator set.
type Simulator struct {
	cfg       *Config
	rng       Rand
	workers   int
	observers []Observer

	logger.Instance
}

type Option func(*Simulator)

func WithObserver(o Observer) Option {
	return func(s *Simulator) {
		s.observers = append(s.observers, o)
	}
}

// WithWorkers overrides the number of goroutines sharing the per-validator pass.
func WithWorkers(workers int) Option {
	return func(s *Simulator) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

func NewSimulator(cfg *Config, rng Rand, opts ...Option) *Simulator {
	s := &Simulator{
		cfg:      cfg,
		rng:      rng,
		workers:  cfg.Workers,
		Instance: logger.New("sim"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s
}

func (s *Simulator) Config() *Config {
	return s.cfg
}

// ProcessEpoch runs one epoch transition and returns the next state with the
// epoch's report row. The pre state is not modified.
//
// Randomness is consumed in a sequential activity pass, so the following
// delta pass is pure and can be split over workers without changing results.
func (s *Simulator) ProcessEpoch(ctx context.Context, pre *State) (*State, EpochReportRow, error) {
	row := OpenEpochReportRow(pre.Epoch)
	totals := ComputeEpochTotals(pre.Validators)

	proposers, err := SelectProposers(s.cfg.Params, pre.Validators, s.rng)
	if err != nil {
		return nil, row, errors.Wrapf(err, "epoch %d", pre.Epoch)
	}
	row.Proposers = uint64(len(proposers))

	activities := make([]Activity, len(pre.Validators))
	for index := range pre.Validators {
		activities[index] = SimulateActivity(s.cfg, &pre.Validators[index], common.ValidatorIndex(index), proposers, s.rng)
	}

	post := &State{
		Epoch:      pre.Epoch + 1,
		Validators: make([]Validator, len(pre.Validators)),
	}

	totalIndexes := len(pre.Validators)
	indexCount := max((totalIndexes+s.workers-1)/s.workers, 1)
	partials := make([]EpochReportRow, (totalIndexes+indexCount-1)/indexCount)

	group, groupCtx := errgroup.WithContext(ctx)
	for shard := range partials {
		startIndex := shard * indexCount
		endIndex := min(startIndex+indexCount, totalIndexes)
		partial := &partials[shard]

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			return s.processValidatorRange(pre, post, activities, &totals, startIndex, endIndex, partial)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, row, errors.Wrapf(err, "epoch %d", pre.Epoch)
	}

	for i := range partials {
		row.Deltas = row.Deltas.Add(partials[i].Deltas)
		row.AttestingValidators += partials[i].AttestingValidators
	}
	postTotals := ComputeEpochTotals(post.Validators)
	row.Close(&postTotals)

	return post, row, nil
}

func (s *Simulator) processValidatorRange(pre, post *State, activities []Activity, totals *EpochTotals, startIndex, endIndex int, partial *EpochReportRow) error {
	for index := startIndex; index < endIndex; index++ {
		validator := &pre.Validators[index]
		baseReward := validator.BaseReward(s.cfg.Params, totals.SqrtActiveBalance)

		deltas, err := GetAttestationDeltas(s.cfg, validator, activities[index], baseReward, totals)
		if err != nil {
			return errors.Wrapf(err, "validator %d", index)
		}

		next := validator.ApplyDeltas(deltas)
		next.UpdateEffectiveBalance(s.cfg.Params)
		post.Validators[index] = next

		partial.Aggregate(deltas, activities[index])
	}
	return nil
}
