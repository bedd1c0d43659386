package sim

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/protolambda/zrnt/eth2/beacon/common"
	"github.com/stretchr/testify/require"

	"github.com/pk910/beacon_go_reward_simulator/logger"
)

type collectingObserver struct {
	rows []EpochReportRow
}

func (o *collectingObserver) ObserveEpoch(row EpochReportRow) {
	o.rows = append(o.rows, row)
}

func TestRunEpochs_ZeroEpochs(t *testing.T) {
	logger.SetTestMode(t)
	cfg := testConfig(t, 0.99, 1.0)
	genesis := NewGenesisState(cfg)

	final, rows, err := NewSimulator(cfg, NewRand(1)).RunEpochs(context.Background(), genesis, 0)
	require.NoError(t, err)
	require.Same(t, genesis, final)
	require.Empty(t, rows)
}

func TestRun_AlwaysOnlineNeverDecreases(t *testing.T) {
	logger.SetTestMode(t)
	require := require.New(t)
	cfg := testConfig(t, 1.0, 1.0)
	state := NewGenesisState(cfg)
	require.Len(state.Validators, 15_625)

	s := NewSimulator(cfg, NewRand(cfg.Seed))
	for epoch := uint64(0); epoch < cfg.Epochs; epoch++ {
		next, row, err := s.ProcessEpoch(context.Background(), state)
		require.NoError(err)

		require.Equal(common.Epoch(epoch), row.Epoch)
		require.Zero(row.HeadFFGPenalty)
		require.Equal(uint64(15_625), row.AttestingValidators)
		require.Equal(uint64(32), row.Proposers)
		for i := range next.Validators {
			require.GreaterOrEqual(uint64(next.Validators[i].Balance), uint64(state.Validators[i].Balance), "validator %d epoch %d", i, epoch)
		}
		require.Greater(uint64(row.StakedBalance), uint64(500_000*gwei))
		state = next
	}
	require.Equal(common.Epoch(cfg.Epochs), state.Epoch)
}

func TestRun_ReportRows(t *testing.T) {
	logger.SetTestMode(t)
	require := require.New(t)
	cfg := testConfig(t, 1.0, 1.0)
	genesis := NewGenesisState(cfg)
	observer := &collectingObserver{}

	final, rows, err := NewSimulator(cfg, NewRand(5), WithObserver(observer)).Run(context.Background(), genesis)
	require.NoError(err)
	require.Len(rows, int(cfg.Epochs))
	require.Equal(rows, observer.rows)

	first := rows[0]
	// 15625 validators, all matching: 3*22897 + 20035 each, 32 proposers on top
	require.Equal(common.Gwei(15_625*68_691), first.HeadFFGReward)
	require.Equal(common.Gwei(15_625*20_035), first.AttesterReward)
	require.Equal(common.Gwei(32*1_396_656), first.ProposerReward)
	require.Equal(int64(first.StakedBalance)-500_000*gwei, first.NetReward())

	last := rows[len(rows)-1]
	totals := ComputeEpochTotals(final.Validators)
	require.Equal(totals.StakedBalance, last.StakedBalance)
	require.Equal(totals.ActiveBalance, last.ActiveBalance)
	require.Equal(totals.MaxBalance, last.MaxBalance)
	require.Equal(totals.MinBalance, last.MinBalance)
	require.Equal(uint64(15_625), last.Validators)
	require.Equal(uint64(15_625), last.ActiveValidators)

	// genesis untouched
	for i := range genesis.Validators {
		require.Equal(common.Gwei(32*gwei), genesis.Validators[i].Balance)
	}
}

func TestRun_InactiveAndSlashed(t *testing.T) {
	logger.SetTestMode(t)
	require := require.New(t)
	settings := DefaultSettings()
	settings.ProbabilityOnline = 1.0
	settings.SlashedPercent = 10
	settings.InactivePercent = 20
	cfg, err := NewConfig(settings)
	require.NoError(err)

	genesis := NewGenesisState(cfg)
	totals := ComputeEpochTotals(genesis.Validators)
	require.Equal(uint64(1_562), totals.SlashedValidators)
	require.Equal(uint64(15_625-3_125), totals.ActiveValidators)

	final, rows, err := NewSimulator(cfg, NewRand(9)).RunEpochs(context.Background(), genesis, 1)
	require.NoError(err)
	require.Len(rows, 1)

	baseReward := genesis.Validators[0].BaseReward(cfg.Params, totals.SqrtActiveBalance)
	for i := range final.Validators {
		pre, post := genesis.Validators[i], final.Validators[i]
		switch {
		case !pre.IsActive:
			require.Equal(pre, post, "inactive validator %d", i)
		case pre.IsSlashed:
			require.Equal(pre.Balance-3*baseReward, post.Balance, "slashed validator %d", i)
			require.True(post.IsSlashed)
		default:
			require.Greater(uint64(post.Balance), uint64(pre.Balance), "validator %d", i)
		}
	}
	require.Equal(common.Gwei(1_562)*3*baseReward, rows[0].HeadFFGPenalty)
}

func TestRun_Reproducible(t *testing.T) {
	logger.SetTestMode(t)
	require := require.New(t)
	cfg := testConfig(t, 0.9, 0.95)

	run := func(workers int) (*State, []EpochReportRow) {
		s := NewSimulator(cfg, NewRand(1234), WithWorkers(workers))
		final, rows, err := s.Run(context.Background(), NewGenesisState(cfg))
		require.NoError(err)
		return final, rows
	}

	finalA, rowsA := run(1)
	finalB, rowsB := run(1)
	finalC, rowsC := run(7)

	require.Equal(rowsA, rowsB)
	require.Equal(finalA, finalB)
	require.Equal(rowsA, rowsC)
	require.Equal(finalA, finalC)
	require.NotZero(rowsA[0].HeadFFGPenalty)
}

func TestRun_InsufficientProposers(t *testing.T) {
	logger.SetTestMode(t)
	settings := DefaultSettings()
	settings.TotalAtStakeInitial = 31 * 32 * gwei
	cfg, err := NewConfig(settings)
	require.NoError(t, err)

	final, rows, err := NewSimulator(cfg, NewRand(1)).Run(context.Background(), NewGenesisState(cfg))
	require.True(t, errors.Is(err, ErrInsufficientProposers), "got %v", err)
	require.Nil(t, final)
	require.Nil(t, rows)
}

func TestRun_Cancelled(t *testing.T) {
	logger.SetTestMode(t)
	cfg := testConfig(t, 1.0, 1.0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewSimulator(cfg, NewRand(1)).Run(ctx, NewGenesisState(cfg))
	require.ErrorIs(t, err, context.Canceled)
}
