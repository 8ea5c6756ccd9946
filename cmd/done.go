package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aitbekov/tirlik/internal/models"
)

var doneDate string

func doneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task's completion for a day",
		Long: `Toggle a task's completion. Running it again on the same day
clears the completion.

Examples:
  tirlik done task-kitchen-dishes
  tirlik done task-kitchen-dishes --date=2026-08-27`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			date := doneDate
			if date == "" {
				date = time.Now().Format(models.DateLayout)
			}

			completed, err := env.App.Completions.Toggle(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			if completed {
				fmt.Printf("completed for %s\n", date)
			} else {
				fmt.Printf("cleared for %s\n", date)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&doneDate, "date", "", "Calendar day (yyyy-MM-dd, default today)")
	return cmd
}
