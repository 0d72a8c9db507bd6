package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlens/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRuntime(cmd, app.ComponentAll, func(ctx context.Context, rt *app.Runtime) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, rt)
		})
	},
}
