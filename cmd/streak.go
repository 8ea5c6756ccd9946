package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streakJSON bool

func streakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current consecutive-day streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			days, err := env.App.Completions.Streak(cmd.Context())
			if err != nil {
				return err
			}
			if streakJSON {
				return printJSON(map[string]int{"streak": days})
			}
			fmt.Println(days)
			return nil
		},
	}
	cmd.Flags().BoolVar(&streakJSON, "json", false, "Output in JSON format")
	return cmd
}
