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

// Package series plays many simulated games between the same two players
// and keeps the standings.
package series

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/umpire/pkg/tennis"
	"laptudirm.com/x/umpire/pkg/umpire/match"
	"laptudirm.com/x/umpire/pkg/umpire/stats"
)

// Hypothesis accepted by a series' SPRT.
type Hypothesis int

const (
	Undecided Hypothesis = iota
	H0
	H1
)

func (hypothesis Hypothesis) String() string {
	switch hypothesis {
	case H0:
		return "H0"
	case H1:
		return "H1"
	default:
		return "undecided"
	}
}

func New(config Config) (*Series, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	series := &Series{
		Config: config,
		Output: os.Stdout,
	}

	if config.SPRT != nil {
		series.lower, series.upper = stats.StoppingBounds(config.SPRT.Alpha, config.SPRT.Beta)
	}

	return series, nil
}

type Series struct {
	Config

	// Output receives the standings reports.
	Output io.Writer

	State struct {
		Games  int
		Points int
		Wins   [tennis.PlayerN]int
	}

	// Verdict of the SPRT, Undecided if it has none or is disabled.
	Verdict Hypothesis

	lower, upper float64
}

type Result struct {
	Number int
	Game   *match.Game
}

func (result Result) String() string {
	return fmt.Sprintf("Game #%d: %s", result.Number, result.Game)
}

// Start plays the series until all games are done, the SPRT reaches a
// verdict, or ctx is cancelled.
func (series *Series) Start(ctx context.Context) error {
	parent := ctx
	ctx, stop := context.WithCancel(parent)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	games := make(chan int)
	results := make(chan Result)

	g.Go(func() error {
		defer close(games)
		for number := 1; number <= series.Games; number++ {
			select {
			case <-gctx.Done():
				return nil
			case games <- number:
			}
		}

		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < series.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return series.Thread(gctx, games, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	for result := range results {
		if series.ResultHandler(result) {
			stop()
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := parent.Err(); err != nil {
		return err
	}

	series.Report()
	return nil
}

// Thread plays games from the queue until it is drained.
func (series *Series) Thread(ctx context.Context, games <-chan int, results chan<- Result) error {
	for number := range games {
		result, err := series.RunGame(ctx, number)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case results <- result:
		}
	}

	return nil
}

func (series *Series) RunGame(ctx context.Context, number int) (Result, error) {
	logrus.Debugf(
		"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s\n",
		number,
		series.Players[tennis.P1],
		series.Players[tennis.P2],
	)

	game, err := match.Run(ctx, &match.Config{
		Players: series.Players,
		Source: match.SourceConfig{
			Name:        "random",
			Probability: series.Probability,
			Seed:        series.Seed + int64(number),
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("game #%d: %w", number, err)
	}

	return Result{Number: number, Game: game}, nil
}

// ResultHandler adds a finished game to the standings and reports
// whether the series should stop.
func (series *Series) ResultHandler(result Result) bool {
	if series.Verdict != Undecided {
		return true
	}

	winner, decided := result.Game.Result.Winner()
	if !decided {
		logrus.Warnf("game #%d finished undecided", result.Number)
		return false
	}

	series.State.Games++
	series.State.Points += len(result.Game.Points)
	series.State.Wins[winner]++

	logrus.Debugf("\x1b[32mFinished\x1b[0m %s\n", result)

	if series.ReportEvery > 0 && series.State.Games%series.ReportEvery == 0 {
		series.Report()
	}

	if series.SPRT == nil {
		return false
	}

	switch llr := series.LLR(); {
	case llr <= series.lower:
		series.Verdict = H0
	case llr >= series.upper:
		series.Verdict = H1
	default:
		return false
	}

	logrus.WithField("llr", series.LLR()).Infof("sprt: %s accepted", series.Verdict)
	return true
}

// LLR returns the log-likelihood ratio of the series' SPRT, from the
// first player's point of view.
func (series *Series) LLR() float64 {
	if series.SPRT == nil {
		return 0
	}

	return stats.SPRT(
		series.State.Wins[tennis.P1], series.State.Wins[tennis.P2],
		series.SPRT.Elo0, series.SPRT.Elo1,
	)
}

func (series *Series) Report() {
	out := series.Output
	wins := series.State.Wins

	fmt.Fprintln(out, "╔═════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║    Name                Wins  Loss     Elo Error ║")
	fmt.Fprintln(out, "╠═════════════════════════════════════════════════╣")
	for i, name := range series.Players {
		player := tennis.Player(i)
		mine, theirs := wins[player], wins[player.Other()]
		lower, elo, upper := stats.Elo(mine, theirs)

		fmt.Fprintf(out,
			"║ %2d. %-15s   %5d %5d   %+5.0f %5s ║\n",
			i+1, name,
			mine, theirs,
			elo, eloError(math.Max(upper-elo, elo-lower)),
		)
	}
	fmt.Fprintln(out, "╠═════════════════════════════════════════════════╣")

	average := 0.0
	if series.State.Games > 0 {
		average = float64(series.State.Points) / float64(series.State.Games)
	}

	fmt.Fprintf(out, "%-50s║\n", fmt.Sprintf("║ GAMES  | N: %d  Points/Game: %.2f", series.State.Games, average))
	if series.SPRT != nil {
		fmt.Fprintf(out, "%-50s║\n", fmt.Sprintf(
			"║ LLR    | %.2f (%.2f, %.2f) [%.1f, %.1f]",
			series.LLR(), series.lower, series.upper, series.SPRT.Elo0, series.SPRT.Elo1,
		))
		fmt.Fprintf(out, "%-50s║\n", fmt.Sprintf("║ SPRT   | %s", series.Verdict))
	}
	if series.Name != "" {
		fmt.Fprintf(out, "%-50s║\n", fmt.Sprintf("║ SERIES | %.39s", series.Name))
	}
	fmt.Fprintln(out, "╚═════════════════════════════════════════════════╝")
}

// eloError formats the half-width of an Elo confidence interval, which is
// unbounded while one player has won (nearly) every game.
func eloError(width float64) string {
	if math.IsInf(width, 0) {
		return "inf"
	}

	return fmt.Sprintf("%.0f", math.Abs(width))
}
