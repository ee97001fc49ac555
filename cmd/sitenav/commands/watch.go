package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/metrics"
	"git.home.luguber.info/inful/sitenav/internal/nav"
	"git.home.luguber.info/inful/sitenav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	MetricsAddr string        `name:"metrics-addr" help:"Serve /metrics and /site.json on this address (e.g. :9090)"`
	Debounce    time.Duration `default:"500ms" help:"Quiet period after a change before rebuilding"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The logging section is read once; later edits to it need a restart.
	if cfg, err := config.Load(root.Config); err == nil {
		useConfigLogger(g, cfg, root.Verbose)
	}

	holder := watch.NewHolder(nil)
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		stop := serve(w.MetricsAddr, reg, holder)
		defer stop()
	}

	watcher, err := watch.New(root.Config, holder, watch.Options{
		Debounce: w.Debounce,
		Recorder: recorder,
		Logger:   slog.Default(),
		OnSwap: func(buildID string, site *nav.Site) {
			slog.Info("Serving site navigation", logfields.BuildID(buildID), logfields.Entries(site.Sidebar().Len()))
		},
	})
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Reload(ctx); err != nil {
		slog.Warn("Initial build failed; waiting for changes", logfields.Error(err))
	}
	return watcher.Run(ctx)
}

// serve starts the metrics and site endpoints and returns a shutdown func.
func serve(addr string, reg *prom.Registry, holder *watch.Holder) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	mux.Handle("/site.json", holder)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		slog.Info("Serving metrics", logfields.Addr(addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Addr(addr), logfields.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
