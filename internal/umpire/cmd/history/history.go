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

	"github.com/spf13/cobra"

	"laptudirm.com/x/umpire/pkg/umpire/history"
)

func History() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the saved games",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}

			names, err := store.List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\x1b[31mNo Games Saved.\x1b[0m")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\x1b[32mSaved Games\x1b[0m:")
			for _, name := range names {
				record, err := store.Load(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(),
					"- \x1b[34m%-10s\x1b[0m %s vs %s %s (%s)\n",
					name, record.Players[0], record.Players[1],
					record.Result, record.Played.Local().Format("2006-01-02 15:04"),
				)
			}

			return nil
		},
	}

	cmd.AddCommand(Show())
	return cmd
}

func open(cmd *cobra.Command) (*history.Store, error) {
	dir, err := cmd.Flags().GetString("data")
	if err != nil || dir == "" {
		return history.Default()
	}

	return history.NewStore(dir)
}
