// Package cli holds the process wiring shared by the chart commands: flag
// parsing, config, logging, metrics export, and the exit code.
package cli

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-charts/internal/config"
	"github.com/couchcryptid/weather-charts/internal/observability"
)

// Env is what a command's run function receives.
type Env struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics

	in, out string
}

// In returns the -in flag, or def when it was not given.
func (e *Env) In(def string) string { return orDefault(e.in, def) }

// Out returns the -out flag, or def when it was not given.
func (e *Env) Out(def string) string { return orDefault(e.out, def) }

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// RunFunc builds and runs one tool's pipeline.
type RunFunc func(ctx context.Context, env *Env) error

// Main registers -in and -out, parses the command line, then loads config.
// Flags come first so -h works even when the environment is invalid.
// Commands register any extra flags on flag.CommandLine before calling Main.
// Main exits the process with status 1 on any failure.
func Main(tool string, run RunFunc) {
	in := flag.String("in", "", "input file (default from WEATHER_DATA_DIR / EQ_DATA_DIR)")
	out := flag.String("out", "", "output file (default from OUTPUT_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	env := NewEnv(cfg, observability.NewLogger(cfg, tool), observability.NewMetrics(), *in, *out)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = Execute(ctx, env, run)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// Execute runs fn, writes the metrics textfile when one is configured, and
// logs the outcome. The textfile is written even when fn fails so the
// failure is visible to the collector.
func Execute(ctx context.Context, env *Env, fn RunFunc) error {
	runErr := fn(ctx, env)

	if path := env.Config.MetricsTextfile; path != "" {
		if err := env.Metrics.WriteTextfile(path); err != nil {
			env.Logger.Error("metrics export failed", "error", err)
		}
	}
	if runErr != nil {
		env.Logger.Error("pipeline error", "error", runErr)
		return runErr
	}
	return nil
}

// NewEnv assembles an Env. in and out are the raw -in and -out values; empty
// means use the tool's configured default.
func NewEnv(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, in, out string) *Env {
	return &Env{Config: cfg, Logger: logger, Metrics: metrics, in: in, out: out}
}
