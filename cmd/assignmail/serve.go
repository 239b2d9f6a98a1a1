package main

import (
	"github.com/spf13/cobra"

	"github.com/mle-ats/assignmail/internal/httpapi"
	"github.com/mle-ats/assignmail/internal/server"
)

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(*envFile)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			api := httpapi.New(a.service, a.mailer,
				httpapi.WithLogger(log),
				httpapi.WithReadinessChecks(a.checks),
				httpapi.WithCORSOrigins(cfg.CORSAllowOrigins...),
				httpapi.WithMaxBodySize(cfg.HTTP.MaxBodySize),
			)

			opts := []server.Option{
				server.Address(cfg.HTTP.Addr),
				server.Logger(log),
				server.Timeouts(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.IdleTimeout),
				server.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
			}
			for _, hook := range a.shutdown {
				opts = append(opts, server.ShutdownHook(hook))
			}

			return server.Run(cmd.Context(), api.Routes(), opts...)
		},
	}
}
