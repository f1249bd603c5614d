package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/umpire/pkg/umpire/stats"
)

func TestStoppingBounds(t *testing.T) {
	lower, upper := stats.StoppingBounds(0.05, 0.05)
	assert.InDelta(t, -math.Log(19), lower, 1e-9)
	assert.InDelta(t, math.Log(19), upper, 1e-9)
}

func TestElo(t *testing.T) {
	t.Run("no games", func(t *testing.T) {
		lower, elo, upper := stats.Elo(0, 0)
		assert.InDelta(t, 0, elo, 1e-9)
		assert.True(t, math.IsInf(lower, -1), lower)
		assert.True(t, math.IsInf(upper, +1), upper)
	})

	t.Run("even", func(t *testing.T) {
		_, elo, _ := stats.Elo(50, 50)
		assert.InDelta(t, 0, elo, 1e-9)
	})

	t.Run("stronger first player", func(t *testing.T) {
		lower, elo, upper := stats.Elo(75, 25)
		assert.Greater(t, elo, 150.0)
		assert.Less(t, elo, 220.0)
		assert.Less(t, lower, elo)
		assert.Greater(t, upper, elo)
	})

	t.Run("antisymmetric", func(t *testing.T) {
		_, a, _ := stats.Elo(30, 10)
		_, b, _ := stats.Elo(10, 30)
		assert.InDelta(t, a, -b, 1e-9)
	})
}

func TestEloOneSided(t *testing.T) {
	tests := []struct {
		name         string
		wins, losses int
	}{
		{"three wins", 3, 0},
		{"twenty wins", 20, 0},
		{"twenty losses", 0, 20},
		{"one loss", 19, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower, elo, upper := stats.Elo(tt.wins, tt.losses)
			assert.False(t, math.IsInf(elo, 0), elo)
			assert.LessOrEqual(t, lower, elo)
			assert.LessOrEqual(t, elo, upper)
		})
	}

	_, _, upper := stats.Elo(20, 0)
	assert.True(t, math.IsInf(upper, +1))

	lower, _, _ := stats.Elo(0, 20)
	assert.True(t, math.IsInf(lower, -1))
}

func TestSPRT(t *testing.T) {
	assert.Less(t, stats.SPRT(100, 100, 0, 10), 0.0)
	assert.Greater(t, stats.SPRT(150, 50, 0, 10), 0.0)
	assert.Greater(t, stats.SPRT(300, 100, 0, 10), stats.SPRT(150, 50, 0, 10))
	assert.InDelta(t, 0, stats.SPRT(0, 0, 0, 10), 1e-12)

	// 400 Elo stronger wins ten games out of eleven.
	assert.InDelta(t, math.Log(20.0/11), stats.SPRT(1, 0, 0, 400), 1e-9)
	assert.InDelta(t, math.Log(2.0/11), stats.SPRT(0, 1, 0, 400), 1e-9)
}
