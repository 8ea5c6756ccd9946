package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aitbekov/tirlik/internal/models"
)

func langCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [ru|kz]",
		Short: "Show or set the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			if len(args) == 0 {
				lang, err := env.App.Settings.Language(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(lang)
				return nil
			}

			return env.App.Settings.SetLanguage(cmd.Context(), models.Language(args[0]))
		},
	}
}
