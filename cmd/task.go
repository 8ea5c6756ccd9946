package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aitbekov/tirlik/internal/models"
	taskservice "github.com/aitbekov/tirlik/internal/services/task"
)

var (
	taskRoomID string
	taskNameRU string
	taskNameKZ string
	taskJSON   bool
)

func taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(taskAddCmd())
	cmd.AddCommand(taskDeleteCmd())

	return cmd
}

func taskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			tasks, err := env.App.Tasks.ListByRoom(cmd.Context(), taskRoomID)
			if err != nil {
				return err
			}
			if taskJSON {
				return printJSON(tasks)
			}

			lang, err := env.App.Settings.Language(cmd.Context())
			if err != nil {
				return err
			}
			for _, task := range tasks {
				marker := " "
				if task.IsPreset {
					marker = "*"
				}
				fmt.Printf("%s %-36s  %s\n", marker, task.ID, displayName(task.Name, lang))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&taskRoomID, "room", "", "Room ID (required)")
	cmd.Flags().BoolVar(&taskJSON, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("room")
	return cmd
}

func taskAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a room",
		Long: `Add a recurring task with names in both languages.

Example:
  tirlik task add --room=room-kitchen --ru="Разморозить холодильник" --kz="Тоңазытқышты еріту"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			task, err := env.App.Tasks.Create(cmd.Context(), taskservice.CreateRequest{
				RoomID: taskRoomID,
				Name:   models.LocalizedName{RU: taskNameRU, KZ: taskNameKZ},
			})
			if err != nil {
				return err
			}
			fmt.Println(task.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&taskRoomID, "room", "", "Room ID (required)")
	cmd.Flags().StringVar(&taskNameRU, "ru", "", "Task name in Russian (required)")
	cmd.Flags().StringVar(&taskNameKZ, "kz", "", "Task name in Kazakh (required)")
	cmd.MarkFlagRequired("room")
	cmd.MarkFlagRequired("ru")
	cmd.MarkFlagRequired("kz")
	return cmd
}

func taskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			return env.App.Tasks.Delete(cmd.Context(), args[0])
		},
	}
}
