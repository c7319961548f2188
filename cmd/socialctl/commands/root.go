package commands

import (
	"fmt"
	"os"
	"strconv"

	"mediasocial/internal/common"
	"mediasocial/internal/config"
	"mediasocial/internal/di"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	operatorID uint64
	token      string
)

var rootCmd = &cobra.Command{
	Use:   "socialctl",
	Short: "Operator tooling for the mediasocial database",
	Long: `socialctl runs maintenance operations against the database the
services share. Every operation runs with admin rights and goes through
the same transactional paths the HTTP services use.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&operatorID, "operator", 0, "user id recorded as the acting admin")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("SOCIALCTL_TOKEN"), "bearer token forwarded to the upload server")

	rootCmd.AddCommand(migrateCmd, deleteUserCmd, deletePostCmd, resetChatsCmd)
}

// withOps loads the configuration and builds the services for one command.
func withOps(run func(ops *di.Ops) error) error {
	cfg := config.LoadConfig()
	ops, cleanup, err := di.InitializeOps(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer cleanup()
	return run(ops)
}

func operator() common.Actor {
	return common.Actor{UserID: operatorID, Level: common.LevelAdmin, Token: token}
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
