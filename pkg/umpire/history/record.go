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

package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laptudirm.com/x/umpire/pkg/tennis"
	"laptudirm.com/x/umpire/pkg/umpire/match"
)

// ErrMismatch is returned by Replay when the stored points do not lead to
// the stored result.
var ErrMismatch = errors.New("history: replayed result does not match record")

// Record is the stored form of a finished game.
type Record struct {
	Players    [tennis.PlayerN]string `yaml:"players"`
	Points     string                 `yaml:"points"`
	Transcript []string               `yaml:"transcript,omitempty"`
	Result     string                 `yaml:"result"`
	Played     time.Time              `yaml:"played"`
}

func NewRecord(game *match.Game, played time.Time) Record {
	return Record{
		Players:    game.Players,
		Points:     tennis.FormatPoints(game.Points),
		Transcript: game.Transcript,
		Result:     game.Result.String(),
		Played:     played.UTC(),
	}
}

// Replay plays the recorded points through a fresh game and checks that
// they reach the recorded result.
func (record Record) Replay() (*match.Game, error) {
	points, err := tennis.ParsePoints(record.Points)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	want, err := tennis.ParseResult(record.Result)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	source := match.NewSequence(points)
	game, err := match.Play(context.Background(), record.Players, source)
	if err != nil {
		return game, fmt.Errorf("replay: %w", err)
	}

	if game.Result != want || source.Remaining() != 0 {
		return game, ErrMismatch
	}

	return game, nil
}
