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

// Package tennis implements the scoring of a single tennis game as a
// state machine over a closed set of score values.
package tennis

import (
	"errors"
	"fmt"
)

// Player identifies one of the two sides of a game.
type Player uint8

const (
	P1 Player = iota
	P2

	PlayerN = 2
)

// Other returns the opponent of the given player.
func (player Player) Other() Player {
	return player ^ 1
}

func (player Player) String() string {
	switch player {
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return "P?"
	}
}

// name picks the name belonging to the player from the given pair.
func (player Player) name(names [PlayerN]string) string {
	return names[player&1]
}

// ErrGameOver is returned when a point is scored in a game which has
// already been won. The score is left unchanged.
var ErrGameOver = errors.New("tennis: game is already over")

// ErrInvalid is returned by Next for a player other than P1 or P2, and for
// a Points score with a count outside 0-3.
var ErrInvalid = errors.New("tennis: invalid score or player")

// Score is the point state of a game. The only implementations are
// Points, Deuce, Advantage and Win.
type Score interface {
	// Render returns the display string of the score, with the player
	// names substituted where the score refers to a player.
	Render(name1, name2 string) string

	isScore()
}

// Points is an ordinary point count below deuce territory. Both counts
// are in the range 0-3.
type Points struct {
	P1, P2 int
}

// Deuce means both players have at least three points and are tied.
type Deuce struct{}

// Advantage means Player leads by one point after deuce.
type Advantage struct {
	Player Player
}

// Win is the terminal score of a game.
type Win struct {
	Player Player
}

func (Points) isScore()    {}
func (Deuce) isScore()     {}
func (Advantage) isScore() {}
func (Win) isScore()       {}

// Start is the score every game begins at.
var Start Score = Points{}

var labels = [...]string{
	0: "Love",
	1: "Fifteen",
	2: "Thirty",
	3: "Forty",
}

func label(points int) string {
	if points < 0 || points >= len(labels) {
		return "?"
	}

	return labels[points]
}

func (score Points) Render(name1, name2 string) string {
	if score.P1 == score.P2 {
		return label(score.P1) + " All"
	}

	return label(score.P1) + "-" + label(score.P2)
}

func (Deuce) Render(name1, name2 string) string {
	return "Deuce"
}

func (score Advantage) Render(name1, name2 string) string {
	return "Advantage " + score.Player.name([PlayerN]string{name1, name2})
}

func (score Win) Render(name1, name2 string) string {
	return "Win for " + score.Player.name([PlayerN]string{name1, name2})
}

func (score Points) valid() bool {
	return score.P1 >= 0 && score.P1 < len(labels) &&
		score.P2 >= 0 && score.P2 < len(labels)
}

// get and set index a Points value by player so that Next can be written
// once for both sides.
func (score Points) get(player Player) int {
	if player == P1 {
		return score.P1
	}

	return score.P2
}

func (score Points) set(player Player, points int) Points {
	if player == P1 {
		score.P1 = points
	} else {
		score.P2 = points
	}

	return score
}

// Next returns the score following the given one after player has won a
// point. Scoring on a Win returns ErrGameOver together with the unchanged
// score.
func Next(score Score, player Player) (Score, error) {
	if player >= PlayerN {
		return score, fmt.Errorf("%w: player %d", ErrInvalid, player)
	}

	switch score := score.(type) {
	case Points:
		if !score.valid() {
			return score, fmt.Errorf("%w: points %d-%d", ErrInvalid, score.P1, score.P2)
		}

		mine, theirs := score.get(player), score.get(player.Other())
		switch {
		case mine == 3 && theirs == 3:
			return Deuce{}, nil
		case mine == 3:
			return Win{Player: player}, nil
		case mine == 2 && theirs == 3:
			// 40-40 is deuce.
			return Deuce{}, nil
		default:
			return score.set(player, mine+1), nil
		}

	case Deuce:
		return Advantage{Player: player}, nil

	case Advantage:
		if score.Player == player {
			return Win{Player: player}, nil
		}

		return Deuce{}, nil

	case Win:
		return score, ErrGameOver

	default:
		return score, fmt.Errorf("tennis: unknown score %T", score)
	}
}
