package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name       string
		stake      int64
		guess      int
		drawn      int
		wantWon    bool
		wantReward int64
	}{
		{"win pays nine times", 200, 3, 3, true, 1800},
		{"loss costs stake", 200, 3, 0, false, -200},
		{"zero stake win", 0, 0, 0, true, 0},
		{"zero stake loss", 0, 0, 1, false, 0},
		{"lowest digit", 1, 0, 0, true, 9},
		{"highest digit", 1, 9, 9, true, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			won, reward := Evaluate(tc.stake, tc.guess, tc.drawn)
			require.Equal(t, tc.wantWon, won)
			require.Equal(t, tc.wantReward, reward)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		won, reward := Evaluate(555, 2, 7)
		require.False(t, won)
		require.Equal(t, int64(-555), reward)
	}
}
