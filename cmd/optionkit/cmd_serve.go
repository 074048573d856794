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

	"github.com/estatedesk/optionkit/components/optionsapi"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr         string
		basePath     string
		defaultLimit int
		maxLimit     int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve catalog options over HTTP for admin form widgets",
		Example: `  optionkit serve --catalog ./catalogs --addr :8080
  curl 'http://localhost:8080/api/options?field=prefecture&q=東&limit=10'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadCatalog()
			if err != nil {
				return err
			}
			if store.Empty() {
				a.logger.Warn("serving an empty catalog", zap.String("dir", a.catalogDir))
			}

			mux := http.NewServeMux()
			component := optionsapi.New(
				optionsapi.WithProvider(store),
				optionsapi.WithLogger(a.logger),
				optionsapi.WithDefaultLimit(defaultLimit),
				optionsapi.WithMaxLimit(maxLimit),
			)
			path, err := component.RegisterRoutes(mux, basePath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a.logger, &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}, path)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "", "path prefix for the options route")
	cmd.Flags().IntVar(&defaultLimit, "default-limit", optionsapi.DefaultOptions().DefaultLimit, "results returned when no limit is given")
	cmd.Flags().IntVar(&maxLimit, "max-limit", optionsapi.DefaultOptions().MaxLimit, "upper bound for the limit parameter")
	return cmd
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, logger *zap.Logger, srv *http.Server, path string) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("options api listening", zap.String("addr", srv.Addr), zap.String("path", path))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down options api")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
