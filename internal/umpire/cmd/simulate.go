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

package cmd

import (
	"runtime"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/umpire/pkg/umpire/series"
)

const SPIN = 14

func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a series of games between two players",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays a series of random games between two players
			and prints the standings along with an estimate of the
			strength difference between them.

			Every point is won by the first player with the given
			probability. The series can be described in a YAML file
			passed with --config; flags given on the command line
			override the values from the file.

			If the config has an sprt section, the series stops as soon
			as the test accepts one of its two Elo hypotheses.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var config series.Config
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				var err error
				if config, err = series.LoadConfig(path); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if config.Games == 0 || flags.Changed("games") {
				config.Games, _ = flags.GetInt("games")
			}
			if config.Concurrency == 0 || flags.Changed("concurrency") {
				config.Concurrency, _ = flags.GetInt("concurrency")
			}
			if flags.Changed("probability") {
				config.Probability, _ = flags.GetFloat64("probability")
			}
			if flags.Changed("seed") {
				config.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("report-every") {
				config.ReportEvery, _ = flags.GetInt("report-every")
			}
			if flags.Changed("p1") {
				config.Players[0], _ = flags.GetString("p1")
			}
			if flags.Changed("p2") {
				config.Players[1], _ = flags.GetString("p2")
			}

			sim, err := series.New(config)
			if err != nil {
				return err
			}
			sim.Output = cmd.OutOrStdout()

			logrus.WithFields(logrus.Fields{
				"name":        sim.Name,
				"games":       sim.Games,
				"concurrency": sim.Concurrency,
				"seed":        sim.Seed,
			}).Infof("Starting series: %s vs %s", sim.Players[0], sim.Players[1])

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Start()
			err = sim.Start(cmd.Context())
			s.Stop()

			return err
		},
	}

	cmd.Flags().StringP("config", "c", "", "YAML file describing the series")
	cmd.Flags().IntP("games", "n", 100, "Number of games to play")
	cmd.Flags().IntP("concurrency", "j", runtime.NumCPU(), "Number of games to play at once")
	cmd.Flags().Float64P("probability", "p", 0.5, "Chance of the first player winning a point")
	cmd.Flags().Int64("seed", 0, "Seed of the random points")
	cmd.Flags().Int("report-every", 0, "Print the standings every n games")
	cmd.Flags().String("p1", "", "Name of the first player")
	cmd.Flags().String("p2", "", "Name of the second player")

	return cmd
}
