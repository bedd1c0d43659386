package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/pk910/beacon_go_reward_simulator/sim"
)

// RenderTable prints the rows as a table. Rewards are in Gwei, balances in ETH.
func RenderTable(w io.Writer, rows []sim.EpochReportRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Epoch", "FFG reward", "FFG penalty", "Proposer", "Attester", "Net", "Staked (ETH)", "Min (ETH)", "Max (ETH)", "Active", "Attesting"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)

	for i := range rows {
		row := &rows[i]
		table.Append([]string{
			strconv.FormatUint(uint64(row.Epoch), 10),
			strconv.FormatUint(uint64(row.HeadFFGReward), 10),
			strconv.FormatUint(uint64(row.HeadFFGPenalty), 10),
			strconv.FormatUint(uint64(row.ProposerReward), 10),
			strconv.FormatUint(uint64(row.AttesterReward), 10),
			strconv.FormatInt(row.NetReward(), 10),
			fmt.Sprintf("%.4f", gweiToEth(row.StakedBalance)),
			fmt.Sprintf("%.4f", gweiToEth(row.MinBalance)),
			fmt.Sprintf("%.4f", gweiToEth(row.MaxBalance)),
			strconv.FormatUint(row.ActiveValidators, 10),
			strconv.FormatUint(row.AttestingValidators, 10),
		})
	}
	table.Render()
}
