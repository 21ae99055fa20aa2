package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/diwise/paranuara/internal/pkg/application/datastore"
	"github.com/diwise/paranuara/internal/pkg/application/paranuara"
	"github.com/diwise/paranuara/internal/pkg/infrastructure/datasource"
	"github.com/diwise/paranuara/internal/pkg/infrastructure/router"
	"github.com/diwise/paranuara/internal/pkg/presentation/api"
	"github.com/diwise/paranuara/internal/pkg/presentation/api/auth"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST api server",
	RunE:  runServe,
}

func init() {
	addCommonFlags(serveCmd)
	serveCmd.Flags().String("listen", "", "address to listen on (all interfaces if empty)")
	serveCmd.Flags().String("port", "", "port to listen on (default 8080)")
	serveCmd.Flags().String("policies", "", "path to a rego file with authorization policies")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, log, cleanup := o11y.Init(cmd.Context(), serviceName, buildinfo.SourceVersion(), "json")
	defer cleanup()

	flags := flagsFromCommand(ctx, cmd)

	handler, err := initialize(ctx, flags)
	if err != nil {
		log.Error("failed to initialize service", "err", err.Error())
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(flags[listenAddress], flags[servicePort]),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting to listen for connections", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed to listen for connections", "err", err.Error())
		return err
	}

	return nil
}

func initialize(ctx context.Context, flags FlagMap) (http.Handler, error) {
	cfg, err := loadConfigurationFile(flags[configPath])
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	app, err := loadApp(ctx, cfg)
	if err != nil {
		return nil, err
	}

	policies, err := openPolicies(flags[policyPath])
	if err != nil {
		return nil, fmt.Errorf("failed to open authorization policies: %w", err)
	}
	defer policies.Close()

	r := router.New(serviceName, cfg.CORS.AllowedOrigins)

	err = api.RegisterHandlers(ctx, r, policies, app)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func loadApp(ctx context.Context, cfg *Config) (paranuara.App, error) {
	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := datastore.New(ds.People, ds.Companies)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	return paranuara.New(store), nil
}

func loadDataset(ctx context.Context, cfg *Config) (*datasource.Dataset, error) {
	var pool *pgxpool.Pool

	if cfg.People.NeedsDatabase() || cfg.Companies.NeedsDatabase() {
		var err error

		pool, err = datasource.Connect(ctx, postgresConfigFromEnv(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		// the datasets are kept in memory, so the pool is only needed during the load
		defer pool.Close()
	}

	people, err := datasource.New(cfg.People, pool)
	if err != nil {
		return nil, fmt.Errorf("bad people source: %w", err)
	}

	companies, err := datasource.New(cfg.Companies, pool)
	if err != nil {
		return nil, fmt.Errorf("bad companies source: %w", err)
	}

	return datasource.Load(ctx, people, companies)
}

func openPolicies(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(strings.NewReader(auth.DefaultPolicy)), nil
	}

	return os.Open(path)
}
