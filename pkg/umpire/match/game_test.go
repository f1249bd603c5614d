package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/umpire/pkg/tennis"
	"laptudirm.com/x/umpire/pkg/umpire/match"
)

func TestRunSequence(t *testing.T) {
	game, err := match.Run(context.Background(), &match.Config{
		Players: [2]string{"Nadal", "Federer"},
		Source:  match.SourceConfig{Points: "1 1 1 1"},
	})
	require.NoError(t, err)

	assert.Equal(t, tennis.Player1Wins, game.Result)
	assert.Equal(t, tennis.Win{Player: tennis.P1}, game.Score)
	assert.Equal(t, []string{
		"Fifteen-Love",
		"Thirty-Love",
		"Forty-Love",
		"Win for Nadal",
	}, game.Transcript)
	assert.Equal(t, "Nadal wins 1-0 in 4 points", game.String())
}

func TestRunDeuceGame(t *testing.T) {
	game, err := match.Run(context.Background(), &match.Config{
		Players: [2]string{"Nadal", "Federer"},
		Source:  match.SourceConfig{Name: "sequence", Points: "121212 12 2 2"},
	})
	require.NoError(t, err)

	assert.Equal(t, tennis.Player2Wins, game.Result)
	assert.Equal(t, "Deuce", game.Transcript[5])
	assert.Equal(t, "Advantage Nadal", game.Transcript[6])
	assert.Equal(t, "Deuce", game.Transcript[7])
	assert.Equal(t, "Advantage Federer", game.Transcript[8])
	assert.Equal(t, "Win for Federer", game.Transcript[9])
	assert.Len(t, game.Points, 10)
}

func TestRunIncomplete(t *testing.T) {
	game, err := match.Run(context.Background(), &match.Config{
		Source: match.SourceConfig{Points: "1 2 1"},
	})
	assert.ErrorIs(t, err, match.ErrIncomplete)
	require.NotNil(t, game)
	assert.Equal(t, tennis.Ongoing, game.Result)
	assert.Equal(t, tennis.Points{P1: 2, P2: 1}, game.Score)
	assert.Equal(t, "Player 1 vs Player 2: *", game.String())
}

func TestRunStopsAtWin(t *testing.T) {
	source := match.NewSequence([]tennis.Player{tennis.P2, tennis.P2, tennis.P2, tennis.P2, tennis.P1})

	game, err := match.Play(context.Background(), [2]string{"A", "B"}, source)
	require.NoError(t, err)
	assert.Equal(t, tennis.Player2Wins, game.Result)
	assert.Equal(t, 1, source.Remaining())
}

func TestRunInvalidSource(t *testing.T) {
	_, err := match.Run(context.Background(), &match.Config{
		Source: match.SourceConfig{Name: "telepathy"},
	})
	assert.Error(t, err)

	_, err = match.Run(context.Background(), &match.Config{
		Source: match.SourceConfig{Points: "1 3"},
	})
	assert.Error(t, err)

	_, err = match.Run(context.Background(), &match.Config{
		Source: match.SourceConfig{Name: "random", Probability: 1.5},
	})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := match.Run(ctx, &match.Config{
		Source: match.SourceConfig{Name: "random", Seed: 1},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

type failing struct{}

func (failing) Next() (tennis.Player, error) {
	return tennis.P1, errors.New("umpire fell asleep")
}

func TestRunSourceError(t *testing.T) {
	_, err := match.Play(context.Background(), [2]string{"A", "B"}, failing{})
	assert.ErrorContains(t, err, "umpire fell asleep")
}

func TestRandomIsSeeded(t *testing.T) {
	config := &match.Config{
		Source: match.SourceConfig{Name: "random", Probability: 0.6, Seed: 42},
	}

	first, err := match.Run(context.Background(), config)
	require.NoError(t, err)
	second, err := match.Run(context.Background(), config)
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
	assert.NotEqual(t, tennis.Ongoing, first.Result)
}

func TestRandomProbability(t *testing.T) {
	source, err := match.NewRandom(0.9, 7)
	require.NoError(t, err)

	wins := 0
	for i := 0; i < 1000; i++ {
		player, err := source.Next()
		require.NoError(t, err)
		if player == tennis.P1 {
			wins++
		}
	}

	assert.InDelta(t, 900, wins, 60)
}
