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


package stats

import "math"

// Elo returns the Elo difference of the first player over the second and
// its 95% confidence interval, lower <= elo <= upper. A bound is infinite
// when the interval reaches past a certainty of winning or losing.
func Elo(wins, losses int) (lower float64, elo float64, upper float64) {
	// Half a win and half a loss of prior keep the estimate finite.
	N := float64(wins+losses) + 1
	mu := (float64(wins) + 0.5) / N

	sigma := math.Sqrt(mu*(1-mu)) / math.Sqrt(N)

	lower = scoreToElo(mu + phiInv(0.025)*sigma)
	upper = scoreToElo(mu + phiInv(0.975)*sigma)
	return lower, scoreToElo(mu), upper
}
