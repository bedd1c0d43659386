package sim

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned by NewConfig for out-of-range settings.
	ErrInvalidConfig = errors.New("invalid simulation config")
	// ErrInsufficientProposers aborts an epoch when fewer active, unslashed
	// validators exist than proposer slots.
	ErrInsufficientProposers = errors.New("not enough eligible proposers")
	// ErrRewardOverflow signals that the shaved FFG reward product left 64 bits.
	ErrRewardOverflow = errors.New("ffg reward overflow")
)
