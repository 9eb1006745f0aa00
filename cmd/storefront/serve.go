package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/site"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp(cmd, rootFlags, "serve")
			if err != nil {
				return err
			}
			if opts.addr != "" {
				cfg.Server.Addr = opts.addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = runServe(ctx, cfg, log)
			if err != nil {
				log.Error(err, "serve command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "Listen address (overrides server.addr and STOREFRONT_ADDR)")

	return cmd
}

func newServer(cfg *config.Config, log *logger.Logger) (*http.Server, error) {
	handler, err := site.NewHandler(cfg, log)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}, nil
}

func runServe(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	server, err := newServer(cfg, log)
	if err != nil {
		return newCommandError("serve", "building the site", err, "Check the server section of your configuration.")
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return newCommandError("serve", "listening on "+server.Addr, err, "Pick a free address with --addr or STOREFRONT_ADDR.")
	}

	log.WithFields(map[string]any{"addr": listener.Addr().String()}).Info("storefront listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return newCommandError("serve", "serving HTTP", err, "Check the logs above for the failing request.")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return newCommandError("serve", "shutting down", err, "In-flight requests did not finish in time.")
	}
	return nil
}
