// Package cmd wires the cobra command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aitbekov/tirlik/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tirlik",
	Short: "Tirlik - a household chore tracker for your terminal",
	Long: `Tirlik tracks recurring household chores by room, keeps a daily
completion streak, and backs everything up to a portable JSON file.
Run with no arguments to open the interactive interface.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		return tui.Run(cmd.Context(), env.App)
	},
}

func Execute() error {
	rootCmd.AddCommand(
		roomCmd(),
		taskCmd(),
		doneCmd(),
		streakCmd(),
		exportCmd(),
		importCmd(),
		langCmd(),
	)
	return rootCmd.Execute()
}
