package watch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitenav/internal/config"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/metrics"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// DefaultDebounce is the quiet period after the last file event before a rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a Watcher. Zero values select defaults.
type Options struct {
	Debounce time.Duration
	Recorder metrics.Recorder
	Logger   *slog.Logger
	// OnSwap is called after a successful rebuild has been installed.
	OnSwap func(buildID string, site *nav.Site)
}

// Watcher rebuilds the site whenever the configuration file, or an env file
// next to it, changes. A failed rebuild leaves the previous site in place.
type Watcher struct {
	configPath string
	holder     *Holder
	opts       Options
	watcher    *fsnotify.Watcher
	reloadMu   sync.Mutex
}

// New creates a watcher for the configuration file at configPath that
// publishes into holder.
func New(configPath string, holder *Holder, opts Options) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve config path").
			WithContext(logfields.KeyConfigPath, configPath).
			Build()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create file watcher").Build()
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Watcher{
		configPath: absPath,
		holder:     holder,
		opts:       opts,
		watcher:    fw,
	}, nil
}

// Run watches the configuration directory and rebuilds on change until ctx
// is canceled. It does not perform an initial build; call Reload first.
func (w *Watcher) Run(ctx context.Context) error {
	// Watching the directory survives editors that replace the file on save.
	dir := filepath.Dir(w.configPath)
	if err := w.watcher.Add(dir); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to watch config directory").
			WithContext(logfields.KeyPath, dir).
			Build()
	}
	w.opts.Logger.Info("Starting configuration watcher", logfields.ConfigPath(w.configPath))

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Remove) {
				w.opts.Logger.Warn("Watched file removed", logfields.Path(event.Name))
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.opts.Logger.Debug("Watched file changed", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				timer.Reset(w.opts.Debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.opts.Logger.Error("Config watcher error", logfields.Error(err))
		case <-timer.C:
			if err := w.Reload(ctx); err != nil {
				w.opts.Logger.Error("Keeping previous site navigation", logfields.Error(err))
			}
		}
	}
}

// Close releases the underlying file watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(name string) bool {
	if filepath.Clean(name) == w.configPath {
		return true
	}
	if filepath.Dir(name) != filepath.Dir(w.configPath) {
		return false
	}
	base := filepath.Base(name)
	return base == ".env" || base == ".env.local"
}

// Reload loads and builds the site once. On success the holder is swapped
// and OnSwap runs; on failure the holder is untouched and the error returned.
func (w *Watcher) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	buildID := uuid.NewString()
	logger := w.opts.Logger.With(logfields.BuildID(buildID), logfields.ConfigPath(w.configPath))
	start := time.Now()

	_, site, err := config.LoadSite(w.configPath)
	elapsed := time.Since(start)
	w.opts.Recorder.ObserveBuildDuration(elapsed)

	if err != nil {
		w.opts.Recorder.IncBuildOutcome(metrics.OutcomeFailed)
		var vs nav.Violations
		if errors.As(err, &vs) {
			w.recordViolations(vs)
			for _, v := range vs {
				logger.Error("Site navigation violation",
					logfields.Location(string(v.Location)),
					logfields.Kind(string(v.Kind)),
					logfields.Severity(v.Severity.String()),
					slog.String("message", v.Message))
			}
		}
		return err
	}

	warnings := site.Warnings()
	w.recordViolations(warnings)
	outcome := metrics.OutcomeSuccess
	if len(warnings) > 0 {
		outcome = metrics.OutcomeWarning
	}
	w.opts.Recorder.IncBuildOutcome(outcome)
	w.opts.Recorder.SetSidebarEntries(site.Sidebar().Len())

	w.holder.Swap(site)
	logger.Info("Site navigation rebuilt",
		logfields.Entries(site.Sidebar().Len()),
		logfields.Warnings(len(warnings)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))

	if w.opts.OnSwap != nil {
		w.opts.OnSwap(buildID, site)
	}
	return nil
}

func (w *Watcher) recordViolations(vs nav.Violations) {
	counts := map[nav.Kind]int{}
	for _, v := range vs {
		counts[v.Kind]++
	}
	for kind, n := range counts {
		w.opts.Recorder.AddViolations(string(kind), n)
	}
}
