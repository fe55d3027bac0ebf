// Command restcored runs a demo restcore server: a small composed
// router wired into a net/http.Server, fronted by a cobra CLI and
// viper-resolved configuration.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohanthewiz/restcore"
	"github.com/rohanthewiz/restcore/adapter/nethttp"
	"github.com/rohanthewiz/restcore/internal/serverconfig"
	"github.com/rohanthewiz/restcore/params"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	flagHost string
	flagPort int
)

var rootCmd = &cobra.Command{
	Use:   "restcored",
	Short: "Run the restcore demo server",
	RunE:  runServe,
}

func init() {
	rootCmd.Flags().StringVar(&flagHost, "host", "", "bind host (overrides RESTCORE_HOST)")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "bind port (overrides RESTCORE_PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if flagHost != "" {
		v.Set("host", flagHost)
	}
	if flagPort != 0 {
		v.Set("port", flagPort)
	}

	cfg, err := serverconfig.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	router := demoRouter(logger)
	dispatcher := restcore.NewDispatcher(router)
	handler := nethttp.New(dispatcher)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("restcored listening", zap.String("addr", addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("restcored shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// demoRouter builds a small router demonstrating collection/item
// dispatch, config composition and a JSON-decoding POST handler.
func demoRouter(logger *zap.Logger) *restcore.Router {
	type widget struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	widgets := []widget{{ID: 1, Name: "sprocket"}, {ID: 2, Name: "cog"}}

	api := restcore.NewRouter()
	api.Get("/widgets", func(_ context.Context, _ *restcore.Request[params.DynamicParams]) (any, error) {
		return widgets, nil
	})
	api.Get("/widgets/{id}", func(_ context.Context, req *restcore.Request[params.DynamicParams]) (any, error) {
		id, err := params.Get[int](req.Params, "id")
		if err != nil {
			return nil, err
		}
		for _, w := range widgets {
			if w.ID == id {
				return w, nil
			}
		}
		return nil, restcore.NotFoundError("no such widget")
	})
	api.Post("/widgets", func(_ context.Context, req *restcore.Request[params.DynamicParams]) (any, error) {
		var in widget
		if err := req.DecodeJSON(&in); err != nil {
			return nil, err
		}
		widgets = append(widgets, in)
		return in, nil
	})

	root := restcore.NewRouter().
		WithLogger(logger).
		WithConfig(restcore.NewConfig().HandleHead(true))
	root.Get("/", func(_ context.Context, _ *restcore.Request[params.DynamicParams]) (any, error) {
		return "restcored is up", nil
	})
	root.Add("/v1", api)
	return root
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
