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


// Package stats estimates the strength difference between two players
// from the wins and losses of a series of games. Tennis games are never
// drawn, so every game is a Bernoulli trial and the Elo difference is
// the logistic transform of the first player's win probability.
package stats

import "math"

// StoppingBounds returns the log-likelihood ratio bounds of an SPRT with
// the given type I and type II error rates.
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// eloToScore returns the win probability of a player rated elo points
// above the opponent.
func eloToScore(elo float64) float64 {
	return 1 / (1 + math.Pow(10, -elo/400))
}

// scoreToElo is the inverse of eloToScore. Scores at or beyond the ends
// of (0, 1) map to an infinite Elo difference of the same sign.
func scoreToElo(score float64) float64 {
	switch {
	case score <= 0:
		return math.Inf(-1)
	case score >= 1:
		return math.Inf(+1)
	default:
		return -400 * math.Log10(1/score-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
