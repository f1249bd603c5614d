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

package series

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/umpire/pkg/tennis"
)

type Config struct {
	Name string `yaml:"name"`

	// The two players of every game in the series.
	Players [tennis.PlayerN]string `yaml:"players"`

	// Number of games to play, and how many of them run at once.
	Games       int `yaml:"games"`
	Concurrency int `yaml:"concurrency"`

	// Chance of the first player winning a point. Zero means an even chance.
	Probability float64 `yaml:"probability"`

	// Game n of the series is played with the random seed Seed+n.
	Seed int64 `yaml:"seed"`

	// Print the standings after every ReportEvery games. Zero prints them
	// only at the end of the series.
	ReportEvery int `yaml:"report-every"`

	// Stop the series early once an SPRT between the two Elo hypotheses
	// has an answer. Nil disables the test.
	SPRT *SPRTConfig `yaml:"sprt"`
}

type SPRTConfig struct {
	Elo0  float64 `yaml:"elo0"`  // null hypothesis
	Elo1  float64 `yaml:"elo1"`  // alternate hypothesis
	Alpha float64 `yaml:"alpha"` // type I error bound
	Beta  float64 `yaml:"beta"`  // type II error bound
}

var (
	ErrNoGames     = errors.New("new series: number of games must be positive")
	ErrSPRTBounds  = errors.New("new series: sprt error bounds must be in (0, 1)")
	ErrSPRTElo     = errors.New("new series: sprt elo1 must be greater than elo0")
	ErrProbability = errors.New("new series: probability must be in (0, 1)")
)

// Validate checks the config and fills in defaults.
func (config *Config) Validate() error {
	if config.Games <= 0 {
		return ErrNoGames
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	if config.Probability < 0 || config.Probability >= 1 {
		return ErrProbability
	}

	if config.Players[tennis.P1] == "" {
		config.Players[tennis.P1] = "Player 1"
	}
	if config.Players[tennis.P2] == "" {
		config.Players[tennis.P2] = "Player 2"
	}

	if sprt := config.SPRT; sprt != nil {
		if sprt.Alpha <= 0 || sprt.Alpha >= 1 || sprt.Beta <= 0 || sprt.Beta >= 1 {
			return ErrSPRTBounds
		}

		if sprt.Elo1 <= sprt.Elo0 {
			return ErrSPRTElo
		}
	}

	return nil
}

// LoadConfig reads a series config from a YAML file.
func LoadConfig(path string) (Config, error) {
	var config Config

	file, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	return config, nil
}
