package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API and websocket endpoint",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides config server.addr)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	c, err := newContainer(cmd, 0)
	if err != nil {
		return err
	}
	srv := c.Server()

	// Graceful shutdown context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s. Press Ctrl+C to stop.\n", srv.Addr())

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	slog.Info("server: shutdown complete")
	return nil
}
