package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"smart-checker/api/internal/app"
	"smart-checker/api/internal/handle"
	"smart-checker/api/internal/httpserver"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (form page and /api/score-smart)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				c.cfg.Port = port
			}
			return c.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ev, _, err := app.NewEvaluator(c.cfg, c.logger)
	if err != nil {
		return err
	}
	router := httpserver.NewRouter(handle.New(ev, c.logger), c.logger)
	srv := httpserver.New("0.0.0.0:"+c.cfg.Port, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.logger.Info("http server listening", zap.String("addr", srv.Addr), zap.Bool("mock", ev.Mock()))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		c.logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
