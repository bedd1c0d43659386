package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/pk910/beacon_go_reward_simulator/sim"
)

// CSVHeader names the columns written by WriteCSV.
var CSVHeader = []string{
	"epoch",
	"head_ffg_reward",
	"head_ffg_penalty",
	"proposer_reward",
	"attester_reward",
	"staked_balance",
	"active_balance",
	"max_balance",
	"min_balance",
	"validators",
	"active_validators",
	"attesting_validators",
	"proposers",
}

func csvRecord(row *sim.EpochReportRow) []string {
	u := func(v uint64) string {
		return strconv.FormatUint(v, 10)
	}
	return []string{
		u(uint64(row.Epoch)),
		u(uint64(row.HeadFFGReward)),
		u(uint64(row.HeadFFGPenalty)),
		u(uint64(row.ProposerReward)),
		u(uint64(row.AttesterReward)),
		u(uint64(row.StakedBalance)),
		u(uint64(row.ActiveBalance)),
		u(uint64(row.MaxBalance)),
		u(uint64(row.MinBalance)),
		u(row.Validators),
		u(row.ActiveValidators),
		u(row.AttestingValidators),
		u(row.Proposers),
	}
}

// WriteCSV writes one line per epoch, amounts in Gwei.
func WriteCSV(w io.Writer, rows []sim.EpochReportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for i := range rows {
		if err := writer.Write(csvRecord(&rows[i])); err != nil {
			return errors.Wrapf(err, "write csv row %d", rows[i].Epoch)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}
