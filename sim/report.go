package sim

import (
	"github.com/protolambda/zrnt/eth2/beacon/common"
)

// EpochReportRow summarises one epoch transition: the deltas booked during the
// epoch and the totals of the resulting validator set.
type EpochReportRow struct {
	Epoch common.Epoch
	Deltas

	StakedBalance       common.Gwei
	ActiveBalance       common.Gwei
	MaxBalance          common.Gwei
	MinBalance          common.Gwei
	Validators          uint64
	ActiveValidators    uint64
	AttestingValidators uint64
	Proposers           uint64
}

func OpenEpochReportRow(epoch common.Epoch) EpochReportRow {
	return EpochReportRow{Epoch: epoch}
}

// Aggregate books one validator's deltas into the row.
func (r *EpochReportRow) Aggregate(deltas Deltas, activity Activity) {
	r.Deltas = r.Deltas.Add(deltas)
	if activity.HasMatchedSource {
		r.AttestingValidators++
	}
}

// Close copies the post-transition totals into the row.
func (r *EpochReportRow) Close(post *EpochTotals) {
	r.StakedBalance = post.StakedBalance
	r.ActiveBalance = post.ActiveBalance
	r.MaxBalance = post.MaxBalance
	r.MinBalance = post.MinBalance
	r.Validators = post.Validators
	r.ActiveValidators = post.ActiveValidators
}

// NetReward is the signed balance change of the whole set during the epoch.
func (r *EpochReportRow) NetReward() int64 {
	return int64(r.Rewards()) - int64(r.HeadFFGPenalty)
}
