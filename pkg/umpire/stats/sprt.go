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

// SPRT returns the log-likelihood ratio of the hypothesis that the first
// player is elo1 points stronger against the hypothesis elo0, given its
// wins and losses.
func SPRT(wins, losses int, elo0, elo1 float64) (llr float64) {
	p0 := eloToScore(elo0)
	p1 := eloToScore(elo1)

	return float64(wins)*math.Log(p1/p0) +
		float64(losses)*math.Log((1-p1)/(1-p0))
}
