package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spanforge/pkg/api"
	"github.com/matzehuels/spanforge/pkg/cache"
	"github.com/matzehuels/spanforge/pkg/httputil"
	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command for the construction API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		port    int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the construction HTTP API",
		Long: `Run the construction HTTP API.

The server exposes the pipeline over JSON:

  POST /v1/cluster   bounded merge, returns the component summary
  POST /v1/connect   full-connectivity scan, returns the completing edge
  GET  /healthz      liveness probe

The cache backend is taken from the config file, so a shared Redis or
MongoDB deployment serves cached results across replicas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newCache(cmd, noCache)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			runner := pipeline.NewRunner(store, nil, c.Logger)
			fetcher := httputil.NewFetcher(store, cache.NewDefaultKeyer(), cache.TTLHTTP)

			srv := api.NewServer(runner, fetcher, c.Logger, port)
			if err := srv.Start(cmd.Context()); err != nil {
				return err
			}
			printInfo("Serving on %s", srv.Addr())
			printDetail("Press Ctrl+C to stop")

			<-cmd.Context().Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			c.Logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
