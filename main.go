package main

import (
	"fmt"
	"os"

	"github.com/pk910/beacon_go_reward_simulator/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
