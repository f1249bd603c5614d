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
	"fmt"
	"io"
	"math/rand"

	"laptudirm.com/x/umpire/pkg/tennis"
)

// Source yields the winners of consecutive points. Next returns io.EOF
// once the source has no more points.
type Source interface {
	Next() (tennis.Player, error)
}

type SourceConfig struct {
	// Name of the source: "sequence" or "random". An empty name picks
	// "sequence" if Points is set and "random" otherwise.
	Name string `yaml:"name"`

	// Points played by a sequence source, in tennis.ParsePoints format.
	Points string `yaml:"points"`

	// Chance of player 1 winning a point for a random source. Zero means
	// an even chance.
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
}

func NewSource(config SourceConfig) (Source, error) {
	name := config.Name
	if name == "" {
		name = "random"
		if config.Points != "" {
			name = "sequence"
		}
	}

	switch name {
	case "sequence":
		points, err := tennis.ParsePoints(config.Points)
		if err != nil {
			return nil, err
		}

		return NewSequence(points), nil

	case "random":
		return NewRandom(config.Probability, config.Seed)

	default:
		return nil, fmt.Errorf("new source: invalid source %s", name)
	}
}

// Sequence plays back a fixed list of points.
type Sequence struct {
	points []tennis.Player
	next   int
}

func NewSequence(points []tennis.Player) *Sequence {
	return &Sequence{points: points}
}

func (sequence *Sequence) Next() (tennis.Player, error) {
	if sequence.next >= len(sequence.points) {
		return tennis.P1, io.EOF
	}

	sequence.next++
	return sequence.points[sequence.next-1], nil
}

// Remaining returns the number of points not yet played back.
func (sequence *Sequence) Remaining() int {
	return len(sequence.points) - sequence.next
}

// Random decides every point independently, giving player 1 the point
// with the configured probability. The stream of points is fixed by the
// seed.
type Random struct {
	probability float64
	rand        *rand.Rand
}

func NewRandom(probability float64, seed int64) (*Random, error) {
	if probability == 0 {
		probability = 0.5
	}

	if probability <= 0 || probability >= 1 {
		return nil, fmt.Errorf("new source: probability %v out of range (0, 1)", probability)
	}

	return &Random{
		probability: probability,
		rand:        rand.New(rand.NewSource(seed)),
	}, nil
}

func (random *Random) Next() (tennis.Player, error) {
	if random.rand.Float64() < random.probability {
		return tennis.P1, nil
	}

	return tennis.P2, nil
}
