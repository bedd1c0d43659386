package sim

import (
	"math/rand"
)

//go:generate go run github.com/golang/mock/mockgen -package=sim -destination=mock_test.go github.com/pk910/beacon_go_reward_simulator/sim Rand

// Rand is the source of randomness of a simulation run. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n).
	Intn(n int) int
}

func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
