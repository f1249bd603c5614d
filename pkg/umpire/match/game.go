// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/umpire/pkg/tennis"
)

// ErrIncomplete is returned when a source runs out of points before the
// game is decided.
var ErrIncomplete = errors.New("match: source ran out before the game ended")

type Config struct {
	Players [tennis.PlayerN]string `yaml:"players"`
	Source  SourceConfig           `yaml:"source"`
}

// Names returns the player names, filling in defaults for empty ones.
func (config *Config) Names() [tennis.PlayerN]string {
	names := config.Players
	if names[tennis.P1] == "" {
		names[tennis.P1] = "Player 1"
	}
	if names[tennis.P2] == "" {
		names[tennis.P2] = "Player 2"
	}

	return names
}

// Game is the record of one game played to its end.
type Game struct {
	Players [tennis.PlayerN]string

	// Points holds the winner of every point, in order, and Transcript
	// the rendered score after each of them.
	Points     []tennis.Player
	Transcript []string

	Score  tennis.Score
	Result tennis.Result
}

func (game *Game) String() string {
	winner, decided := game.Result.Winner()
	if !decided {
		return fmt.Sprintf("%s vs %s: %s", game.Players[tennis.P1], game.Players[tennis.P2], game.Result)
	}

	return fmt.Sprintf("%s wins %s in %d points", game.Players[winner], game.Result, len(game.Points))
}

// Run plays a game with the source described by config.
func Run(ctx context.Context, config *Config) (*Game, error) {
	source, err := NewSource(config.Source)
	if err != nil {
		return nil, err
	}

	return Play(ctx, config.Names(), source)
}

// Play feeds points from source into a fresh tracker until the game is
// won. The partially played game is returned along with any error.
func Play(ctx context.Context, players [tennis.PlayerN]string, source Source) (*Game, error) {
	tracker := tennis.NewTracker()
	game := &Game{
		Players: players,
		Score:   tracker.Current(),
	}

	for !tracker.Over() {
		select {
		case <-ctx.Done():
			return game, ctx.Err()
		default:
		}

		player, err := source.Next()
		if errors.Is(err, io.EOF) {
			return game, ErrIncomplete
		} else if err != nil {
			return game, fmt.Errorf("match: %w", err)
		}

		score, err := tracker.Score(player)
		if err != nil {
			return game, err
		}

		game.Points = append(game.Points, player)
		game.Score = score
		game.Transcript = append(game.Transcript, score.Render(players[tennis.P1], players[tennis.P2]))

		logrus.WithFields(logrus.Fields{
			"point":  tracker.Points(),
			"winner": players[player],
		}).Debugf("score: %s", game.Transcript[len(game.Transcript)-1])
	}

	game.Result = tennis.ResultOf(game.Score)
	return game, nil
}
