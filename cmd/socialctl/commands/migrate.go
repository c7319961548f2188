package commands

import (
	"fmt"

	"mediasocial/internal/database"
	"mediasocial/internal/di"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOps(func(ops *di.Ops) error {
			if err := database.Migrate(ops.DB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Database migration completed")
			return nil
		})
	},
}
