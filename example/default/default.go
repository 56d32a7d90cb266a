package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/locomotion/internal/logger"
	"github.com/oomph-ac/locomotion/scenario"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/simulation"
	"github.com/oomph-ac/locomotion/worker"
)

const settingsPath = "settings.toml"

// The following program runs every scenario file passed and logs a summary of each actor in it.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ./bin <scenario.yaml>...")
		return
	}

	if err := settings.SaveDefault(settingsPath); err == nil {
		fmt.Println("Created default settings at", settingsPath)
	}
	s, err := settings.Load(settingsPath)
	if err != nil {
		panic(err)
	}

	out := os.Stdout
	if s.Logging.File != "" {
		f, err := os.OpenFile(s.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(logger.Config{Level: s.Logging.Level, Format: s.Logging.Format, Output: out})
	slog.SetDefault(log)

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Sentry.DSN, Environment: s.Sentry.Environment}); err != nil {
			log.Error("failed to initialize sentry", "err", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := simulation.Options{
		TickRate:        s.Simulation.TickRate,
		MaxCatchUpSteps: s.Simulation.MaxCatchUpSteps,
		HistorySize:     s.Simulation.HistorySize,
	}
	frameTime := time.Duration(s.Simulation.FrameTime) * time.Millisecond

	jobs := make([]simulation.Job, 0, len(os.Args)-1)
	for _, path := range os.Args[1:] {
		sc, err := scenario.Load(path)
		if err != nil {
			log.Error("skipping scenario", "path", path, "err", err)
			continue
		}
		name := sc.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		jobOpts := opts
		jobOpts.Logger = log.With("scenario", name)
		jobs = append(jobs, simulation.Job{
			Name: name,
			Build: func() (*simulation.Runner, error) {
				return sc.Build(s.Controller, jobOpts)
			},
			Duration:  sc.Duration,
			FrameTime: frameTime,
		})
	}

	pool := worker.New(s.Simulation.Workers)
	defer pool.Close()

	start := time.Now()
	for _, res := range simulation.RunBatch(ctx, pool, jobs) {
		if res.Err != nil {
			log.Error("scenario failed", "scenario", res.Name, "err", res.Err)
			continue
		}
		for _, summary := range res.Summaries {
			log.Info("actor finished", append([]any{"scenario", res.Name}, summary.LogAttrs()...)...)
		}
	}
	log.Info("all scenarios done", "count", len(jobs), "elapsed", time.Since(start))
}
