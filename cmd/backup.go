package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aitbekov/tirlik/internal/backup"
)

var (
	exportOut    string
	importStrict bool
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a JSON backup",
		Long: `Write a versioned snapshot of rooms, tasks, completion history,
and settings to a file, or to stdout when no file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			snap, err := env.App.Backup.Export(cmd.Context())
			if err != nil {
				return err
			}

			out := os.Stdout
			if exportOut != "" {
				file, err := os.Create(exportOut)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}
			return backup.Encode(out, snap)
		},
	}
	cmd.Flags().StringVarP(&exportOut, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data from a JSON backup",
		Long: `Validate a backup file and replace the entire database with its
contents. The replace is all-or-nothing: on any error the existing data is
left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			snap, err := backup.Decode(file)
			if err != nil {
				return err
			}

			var opts []backup.Option
			if importStrict {
				opts = append(opts, backup.WithStrict())
			}
			codec := backup.NewService(env.App.Repo(), opts...)
			if err := codec.Import(cmd.Context(), snap); err != nil {
				return err
			}

			fmt.Printf("imported %d rooms, %d tasks, %d completions, %d settings\n",
				len(snap.Rooms), len(snap.Tasks), len(snap.CompletionLogs), len(snap.Settings))
			return nil
		},
	}
	cmd.Flags().BoolVar(&importStrict, "strict", false, "Validate every record, not just the file shape")
	return cmd
}
