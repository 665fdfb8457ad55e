package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tubelang/internal/daemon"
	"tubelang/internal/logging"
	"tubelang/internal/store"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if trimmed := strings.TrimSpace(bind); trimmed != "" {
				cfg.Paths.APIBind = trimmed
			}

			logger, logPath, err := logging.NewFromConfig(cfg, true)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logging.PruneDailyLogs(logger, cfg.Logging.RetentionDays, cfg.Paths.LogDir, logPath)

			st, err := store.Open(cfg)
			if err != nil {
				logger.Error("open settings store", logging.Error(err))
				return err
			}

			d, err := daemon.New(cfg, st, logger)
			if err != nil {
				st.Close()
				return fmt.Errorf("create daemon: %w", err)
			}
			defer d.Close()

			if err := d.Start(signalCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s (log %s)\n", d.Addr(), logPath)

			<-signalCtx.Done()
			logger.Info("tubelang server shutting down")
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Override paths.api_bind")
	return cmd
}
