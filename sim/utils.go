package sim

import "github.com/protolambda/zrnt/eth2/beacon/common"

func MaxGwei(x, y common.Gwei) common.Gwei {
	if x > y {
		return x
	}
	return y
}

func MinGwei(x, y common.Gwei) common.Gwei {
	if x < y {
		return x
	}
	return y
}
