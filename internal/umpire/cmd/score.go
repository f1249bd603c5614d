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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/umpire/pkg/tennis"
	"laptudirm.com/x/umpire/pkg/umpire/history"
	"laptudirm.com/x/umpire/pkg/umpire/match"
)

func Score() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score points...",
		Short: "Score a game from the winners of its points",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`score plays the given points through a game of tennis and
			prints the score after every point.

			Every point is written as 1 or 2 (or p1 and p2) for the player
			who won it. Points may be separated by spaces or commas, or run
			together like 11212.

			With --save a finished game is added to the game history,
			where it can be listed with the history command.`),
		Example: heredoc.Doc(`
			$ umpire score 1 1 2 1 1
			$ umpire score --p1 Nadal --p2 Federer 12121212 22
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := tennis.ParsePoints(strings.Join(args, " "))
			if err != nil {
				return err
			}

			p1, _ := cmd.Flags().GetString("p1")
			p2, _ := cmd.Flags().GetString("p2")
			config := match.Config{Players: [tennis.PlayerN]string{p1, p2}}
			players := config.Names()

			game, err := match.Play(cmd.Context(), players, match.NewSequence(points))
			for i, line := range game.Transcript {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d. %-15s %s\n", i+1, players[game.Points[i]], line)
			}

			switch {
			case errors.Is(err, match.ErrIncomplete):
				fmt.Fprintf(cmd.OutOrStdout(), "\n\x1b[33mGame in progress:\x1b[0m %s\n", game.Score.Render(players[tennis.P1], players[tennis.P2]))
				if save, _ := cmd.Flags().GetBool("save"); save {
					return errors.New("score: only finished games can be saved")
				}
				return nil
			case err != nil:
				return err
			}

			if len(game.Points) < len(points) {
				fmt.Fprintf(cmd.OutOrStdout(), "\n\x1b[31mIgnored\x1b[0m %d points after the end of the game\n", len(points)-len(game.Points))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n\x1b[32mFinished:\x1b[0m %s\n", game)

			if save, _ := cmd.Flags().GetBool("save"); save {
				dir, _ := cmd.Flags().GetString("data")
				store, err := history.NewStore(dir)
				if err != nil {
					return err
				}

				name, err := store.Save(history.NewRecord(game, time.Now()))
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Saved game as \x1b[34m%s\x1b[0m\n", name)
			}

			return nil
		},
	}

	cmd.Flags().String("p1", "", "Name of the first player")
	cmd.Flags().String("p2", "", "Name of the second player")
	cmd.Flags().BoolP("save", "s", false, "Save the finished game to the history")

	return cmd
}
