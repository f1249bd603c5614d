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

package tennis

// Tracker keeps the score of one game. A Tracker is not safe for
// concurrent use.
type Tracker struct {
	score  Score
	points int
}

// NewTracker returns a tracker for a fresh game.
func NewTracker() *Tracker {
	return &Tracker{score: Start}
}

// Current returns the score of the game.
func (tracker *Tracker) Current() Score {
	if tracker.score == nil {
		return Start
	}

	return tracker.score
}

// Over reports whether the game has been won.
func (tracker *Tracker) Over() bool {
	_, won := tracker.Current().(Win)
	return won
}

// Points returns the number of points played so far.
func (tracker *Tracker) Points() int {
	return tracker.points
}

// Score moves the game on by a point won by player and returns the new
// score. Once the game is won every call returns ErrGameOver and the
// score stays at the Win.
func (tracker *Tracker) Score(player Player) (Score, error) {
	next, err := Next(tracker.Current(), player)
	if err != nil {
		return next, err
	}

	tracker.score = next
	tracker.points++
	return next, nil
}

func (tracker *Tracker) ScorePlayerOne() (Score, error) {
	return tracker.Score(P1)
}

func (tracker *Tracker) ScorePlayerTwo() (Score, error) {
	return tracker.Score(P2)
}

// Render returns the display string of the current score.
func (tracker *Tracker) Render(name1, name2 string) string {
	return tracker.Current().Render(name1, name2)
}

// Reset puts the tracker back at the start of a game.
func (tracker *Tracker) Reset() {
	tracker.score = Start
	tracker.points = 0
}
