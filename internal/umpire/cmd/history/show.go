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

package history

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Show() *cobra.Command {
	return &cobra.Command{
		Use:   "show game-name",
		Short: "Print a saved game and check it by replaying its points",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}

			record, err := store.Load(args[0])
			if err != nil {
				return err
			}

			game, err := record.Replay()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			logrus.WithField("game", args[0]).Debug("replay matches record")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\x1b[32m%s\x1b[0m: %s vs %s\n\n", args[0], record.Players[0], record.Players[1])
			for i, line := range game.Transcript {
				fmt.Fprintf(out, "%3d. %-15s %s\n", i+1, game.Players[game.Points[i]], line)
			}
			fmt.Fprintf(out, "\n%s\n", game)

			return nil
		},
	}
}
