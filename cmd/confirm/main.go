package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/musicschool/payments/internal/clients/backend"
	"github.com/musicschool/payments/internal/reconciler"
	"github.com/musicschool/payments/pkg/config"
	"github.com/musicschool/payments/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envPath string

	cmd := &cobra.Command{
		Use:   "confirm [return-url]",
		Short: "Confirm a payment after returning from the payment gateway",
		Long: `Polls the payments service until the payment behind the gateway return url
is confirmed, rejected or the confirmation times out.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfirm(envPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			_, err = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logger.Level, cfg.Logger.Format)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			params, err := reconciler.ParseReturnURL(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := &session{
				fetcher: backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout),
				in:      cmd.InOrStdin(),
				out:     cmd.OutOrStdout(),
				homeURL: cfg.HomeURL,
				opts: []reconciler.Option{
					reconciler.WithInterval(cfg.Interval),
					reconciler.WithMaxAttempts(cfg.MaxAttempts),
				},
			}

			return s.run(ctx, params)
		},
	}

	cmd.Flags().StringVarP(&envPath, "env", "e", ".env", "Path to the env file")
	cmd.SetContext(context.Background())

	return cmd
}
