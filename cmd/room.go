package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aitbekov/tirlik/internal/models"
	roomservice "github.com/aitbekov/tirlik/internal/services/room"
)

var (
	roomNameRU string
	roomNameKZ string
	roomIcon   string
	roomColor  string
	roomJSON   bool
)

func roomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage rooms",
	}

	cmd.AddCommand(roomListCmd())
	cmd.AddCommand(roomAddCmd())
	cmd.AddCommand(roomRenameCmd())
	cmd.AddCommand(roomDeleteCmd())

	return cmd
}

func roomListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			rooms, err := env.App.Rooms.List(cmd.Context())
			if err != nil {
				return err
			}
			if roomJSON {
				return printJSON(rooms)
			}

			lang, err := env.App.Settings.Language(cmd.Context())
			if err != nil {
				return err
			}
			for _, room := range rooms {
				marker := " "
				if room.IsPreset {
					marker = "*"
				}
				fmt.Printf("%s %-36s  %s\n", marker, room.ID, displayName(room.Name, lang))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&roomJSON, "json", false, "Output in JSON format")
	return cmd
}

func roomAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a room",
		Long: `Add a room with names in both languages.

Example:
  tirlik room add --ru="Гараж" --kz="Гараж" --icon=car --color=zinc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			room, err := env.App.Rooms.Create(cmd.Context(), roomservice.CreateRequest{
				Name:  models.LocalizedName{RU: roomNameRU, KZ: roomNameKZ},
				Icon:  roomIcon,
				Color: roomColor,
			})
			if err != nil {
				return err
			}
			fmt.Println(room.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&roomNameRU, "ru", "", "Room name in Russian (required)")
	cmd.Flags().StringVar(&roomNameKZ, "kz", "", "Room name in Kazakh (required)")
	cmd.Flags().StringVar(&roomIcon, "icon", "", "Icon identifier")
	cmd.Flags().StringVar(&roomColor, "color", "", "Color identifier")
	cmd.MarkFlagRequired("ru")
	cmd.MarkFlagRequired("kz")
	return cmd
}

func roomRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <room-id>",
		Short: "Update a room's name, icon, or color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			req := roomservice.UpdateRequest{RoomID: args[0]}
			if cmd.Flags().Changed("ru") || cmd.Flags().Changed("kz") {
				req.Name = &models.LocalizedName{RU: roomNameRU, KZ: roomNameKZ}
			}
			if cmd.Flags().Changed("icon") {
				req.Icon = &roomIcon
			}
			if cmd.Flags().Changed("color") {
				req.Color = &roomColor
			}

			if _, err := env.App.Rooms.Update(cmd.Context(), req); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&roomNameRU, "ru", "", "New name in Russian")
	cmd.Flags().StringVar(&roomNameKZ, "kz", "", "New name in Kazakh")
	cmd.Flags().StringVar(&roomIcon, "icon", "", "New icon identifier")
	cmd.Flags().StringVar(&roomColor, "color", "", "New color identifier")
	return cmd
}

func roomDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <room-id>",
		Short: "Delete a room and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			return env.App.Rooms.Delete(cmd.Context(), args[0])
		},
	}
}
