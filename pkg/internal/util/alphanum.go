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

package util

import (
	"regexp"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumLess reports whether a sorts before b in natural order, where
// runs of digits compare by their numeric value: "game-2" < "game-10".
func AlphanumLess(a, b string) bool {
	chunks_a := chunkify(a)
	chunks_b := chunkify(b)

	for i := 0; i < len(chunks_a) && i < len(chunks_b); i++ {
		chunk_a, chunk_b := chunks_a[i], chunks_b[i]
		if chunk_a == chunk_b {
			continue
		}

		aInt, aErr := strconv.Atoi(chunk_a)
		bInt, bErr := strconv.Atoi(chunk_b)

		// If both chunks are numeric, compare them as integers
		if aErr == nil && bErr == nil && aInt != bInt {
			return aInt < bInt
		}

		return chunk_a < chunk_b
	}

	// One is a prefix of the other; the shorter one goes first.
	return len(chunks_a) < len(chunks_b)
}
