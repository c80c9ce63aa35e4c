package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/gomokutest"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		stones string
		want   int64
	}{
		{"empty", "", 0},
		{"single stones", "3,3,1 10,10,2", 0},
		{"three", "5,5,1 6,5,1 7,5,1", 1000},
		{"opponent three", "5,5,2 6,5,2 7,5,2", -1000},
		{"two and two", "5,5,1 6,5,1 5,9,2 5,10,2", 0},
		{"corner", "0,0,1 1,1,1", 100},
		{"long run counts once", "0,4,1 1,4,1 2,4,1 3,4,1 4,4,1 5,4,1 6,4,1", 100000},
		{"cross", "5,5,1 6,5,1 7,5,1 6,4,1 6,6,1", 1000 + 1000 + 4*100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := gomokutest.Board(20, tc.stones)
			assert.Equal(t, tc.want, Evaluate(nil, b, gomoku.Self))
			assert.Equal(t, -tc.want, Evaluate(nil, b, gomoku.Opponent))
		})
	}
}
