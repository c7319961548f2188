package commands

import (
	"fmt"

	"mediasocial/internal/di"

	"github.com/spf13/cobra"
)

var resetChatsCmd = &cobra.Command{
	Use:   "reset-chats",
	Short: "Delete every chat and recreate the fixture conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOps(func(ops *di.Ops) error {
			n, err := ops.Chats.ResetChats(cmd.Context(), operator())
			if err != nil {
				return fmt.Errorf("reset chats: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chat messages reset, %d chats created\n", n)
			return nil
		})
	},
}
