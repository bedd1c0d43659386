package report

import (
	"fmt"
	"io"

	"github.com/protolambda/zrnt/eth2/beacon/common"

	"github.com/pk910/beacon_go_reward_simulator/sim"
)

// Summary holds the outcome of a simulation run.
type Summary struct {
	Epochs     uint64
	Days       float64
	Validators uint64

	InitialStaked common.Gwei
	FinalStaked   common.Gwei
	TotalRewards  common.Gwei
	// Penalties as booked per epoch. A penalty larger than the balance it
	// hits is only partly removed, see AppliedPenalty.
	TotalPenalty common.Gwei
	// Balance actually removed by penalties: initial + rewards - final.
	AppliedPenalty common.Gwei
	// (final - initial) / initial
	FractionGained  float64
	AnnualizedYield float64

	MinBalance common.Gwei
	AvgBalance float64
	MaxBalance common.Gwei
}

// Summarize compares the final state with genesis.
func Summarize(cfg *sim.Config, genesis, final *sim.State, rows []sim.EpochReportRow) Summary {
	summary := Summary{
		Epochs:     uint64(len(rows)),
		Validators: uint64(len(final.Validators)),
	}
	summary.Days = float64(summary.Epochs*cfg.Params.ProposersPerEpoch*sim.SECONDS_PER_SLOT) / (60 * 60 * 24)

	for i := range genesis.Validators {
		summary.InitialStaked += genesis.Validators[i].Balance
	}
	for i := range final.Validators {
		summary.FinalStaked += final.Validators[i].Balance
	}
	for i := range rows {
		summary.TotalRewards += rows[i].Rewards()
		summary.TotalPenalty += rows[i].HeadFFGPenalty
	}
	if credited := summary.InitialStaked + summary.TotalRewards; credited > summary.FinalStaked {
		summary.AppliedPenalty = credited - summary.FinalStaked
	}

	if summary.InitialStaked > 0 {
		summary.FractionGained = (float64(summary.FinalStaked) - float64(summary.InitialStaked)) / float64(summary.InitialStaked)
	}
	if summary.Epochs > 0 {
		summary.AnnualizedYield = summary.FractionGained * cfg.Params.EpochsPerYear() / float64(summary.Epochs)
	}
	summary.MinBalance, summary.MaxBalance, summary.AvgBalance = balanceStats(final.Validators)

	return summary
}

// PrintSummary writes the summary in aligned key/value form.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "epochs:                         %d\n", s.Epochs)
	fmt.Fprintf(w, "duration:                       %f days\n", s.Days)
	fmt.Fprintf(w, "validators:                     %d\n", s.Validators)
	fmt.Fprintf(w, "staked[start]:                  %f ETH\n", gweiToEth(s.InitialStaked))
	fmt.Fprintf(w, "staked[end]:                    %f ETH\n", gweiToEth(s.FinalStaked))
	fmt.Fprintf(w, "rewards:                        %d Gwei\n", uint64(s.TotalRewards))
	fmt.Fprintf(w, "penalties[booked]:              %d Gwei\n", uint64(s.TotalPenalty))
	fmt.Fprintf(w, "penalties[applied]:             %d Gwei\n", uint64(s.AppliedPenalty))
	fmt.Fprintf(w, "fraction_gained:                %f\n", s.FractionGained)
	fmt.Fprintf(w, "annualized_yield:               %f\n", s.AnnualizedYield)
	fmt.Fprintf(w, "balances[end]:                  %d %f %d\n", uint64(s.MinBalance), s.AvgBalance, uint64(s.MaxBalance))
}
