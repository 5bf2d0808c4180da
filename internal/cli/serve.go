package cli

import (
	"github.com/LerianStudio/lib-license/license/server"
	"github.com/LerianStudio/lib-license/license/zap"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over a read-only HTTP API",
		Run:   runServe,
	}

	cmd.Flags().String("address", "", "Listen address (default: $SERVER_ADDRESS or :3000)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := server.ConfigFromEnv()

	if address, _ := cmd.Flags().GetString("address"); address != "" {
		cfg.Address = address
	}

	logger, _, err := zap.New(zap.Config{
		Environment: zap.Environment(cfg.Environment),
		Level:       cfg.LogLevel,
	})
	if err != nil {
		exitErr("serve", err)
	}

	app := server.NewApp(logger)

	manager := server.NewManager(app, cfg.Address, logger)
	if err := manager.Run(cmd.Context()); err != nil {
		exitErr("serve", err)
	}
}
