package sim

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Run simulates cfg.Epochs epochs starting from genesis.
func (s *Simulator) Run(ctx context.Context, genesis *State) (*State, []EpochReportRow, error) {
	return s.RunEpochs(ctx, genesis, s.cfg.Epochs)
}

// RunEpochs threads the validator set through the given number of epoch
// transitions and collects one report row per epoch. Totals are recomputed
// every epoch, nothing but the validator set carries over.
//
// Running zero epochs returns state itself and no rows. A failing epoch
// aborts the run without a partial result.
func (s *Simulator) RunEpochs(ctx context.Context, state *State, epochs uint64) (*State, []EpochReportRow, error) {
	rows := make([]EpochReportRow, 0, epochs)

	for epochID := uint64(0); epochID < epochs; epochID++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		next, row, err := s.ProcessEpoch(ctx, state)
		if err != nil {
			return nil, nil, err
		}
		state = next
		rows = append(rows, row)

		for _, observer := range s.observers {
			observer.ObserveEpoch(row)
		}

		fields := logrus.Fields{
			"epoch":      row.Epoch,
			"staked":     row.StakedBalance,
			"active":     row.ActiveValidators,
			"attesting":  row.AttestingValidators,
			"net_reward": row.NetReward(),
		}
		if s.cfg.LogInterval > 0 && (epochID+1)%s.cfg.LogInterval == 0 {
			s.Log.WithFields(fields).Info("Epoch processed")
		} else {
			s.Log.WithFields(fields).Debug("Epoch processed")
		}
	}

	return state, rows, nil
}
