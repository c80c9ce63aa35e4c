package ai

import "github.com/nelhage/gomokutician/gomoku"

type Weights struct {
	Five      int64 `json:"five"`
	OpenFour  int64 `json:"open_four"`
	Four      int64 `json:"four"`
	OpenThree int64 `json:"open_three"`
	Two       int64 `json:"two"`

	// Runs[n] is the static value of a run of n stones; longer runs
	// use Runs[5].
	Runs [gomoku.WinLength + 1]int64 `json:"runs"`
}

var DefaultWeights = Weights{
	Five:      100000,
	OpenFour:  10000,
	Four:      1000,
	OpenThree: 500,
	Two:       10,

	Runs: [gomoku.WinLength + 1]int64{
		0,      // 0
		0,      // 1
		100,    // 2
		1000,   // 3
		10000,  // 4
		100000, // 5+
	},
}
