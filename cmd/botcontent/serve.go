package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the bot-content function, health probes and metrics over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			slog.Info("starting server",
				slog.String("version", app.BuildVersion()),
				slog.String("route", app.FunctionPath),
			)
			return a.Serve(ctx)
		})
	},
}
