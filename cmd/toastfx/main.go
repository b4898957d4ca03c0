package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"toastfx/internal/config"
	"toastfx/internal/notify"
	"toastfx/internal/trace"
	"toastfx/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type options struct {
	configPath string
	logPath    string
	show       time.Duration
	hide       time.Duration
	lifetime   time.Duration
	demo       time.Duration
	showCurve  string
	hideCurve  string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&opts.logPath, "log", "", "append animation logs to this file")
	flag.DurationVar(&opts.show, "show", 0, "show animation duration (overrides config)")
	flag.DurationVar(&opts.hide, "hide", 0, "hide animation duration (overrides config)")
	flag.DurationVar(&opts.lifetime, "lifetime", 0, "how long a toast stays up (overrides config)")
	flag.StringVar(&opts.showCurve, "show-curve", "", "easing of the show animation, e.g. cubic-out (overrides config)")
	flag.StringVar(&opts.hideCurve, "hide-curve", "", "easing of the hide animation, e.g. quad-in (overrides config)")
	flag.DurationVar(&opts.demo, "demo", 0, "emit a sample toast at this interval")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: toastfx [flags]\n\n")
		fmt.Fprintf(os.Stderr, "toastfx shows animated toast notifications in the terminal.\n")
		fmt.Fprintf(os.Stderr, "Press i/s/w/e to push a toast, d to dismiss the newest, q to quit.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

// loadConfig applies explicitly set duration flags over the loaded config.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "show":
			cfg.ShowDuration = opts.show
		case "hide":
			cfg.HideDuration = opts.hide
		case "lifetime":
			cfg.Lifetime = opts.lifetime
		case "show-curve":
			cfg.ShowCurve = opts.showCurve
		case "hide-curve":
			cfg.HideCurve = opts.hideCurve
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

var samples = []notify.Message{
	{Kind: notify.KindInfo, Title: "Build started", Body: "Compiling 42 packages."},
	{Kind: notify.KindSuccess, Title: "Deploy finished", Body: "api-server is live on 3 nodes."},
	{Kind: notify.KindWarning, Title: "Slow response", Body: "p99 latency above 800ms for 5 minutes."},
	{Kind: notify.KindError, Title: "Job failed", Body: "nightly-backup exited with status 1."},
}

// produce emits a sample message every interval until ctx is done.
func produce(ctx context.Context, e *notify.ChanEmitter, interval time.Duration, logger *log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !e.Emit(samples[i%len(samples)]) {
				logger.Printf("demo: dropped %q, host is behind", samples[i%len(samples)].Title)
			}
		}
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log %s: %w", opts.logPath, err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "toastfx ", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// exporter is nil when OTEL_EXPORTER_OTLP_ENDPOINT is unset; its Tracer and
	// Shutdown methods treat a nil receiver as tracing disabled.
	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			logger.Printf("tracing shutdown: %v", err)
		}
	}()

	appOpts := []ui.AppOption{
		ui.WithContext(ctx),
		ui.WithAppLogger(logger),
		ui.WithAppTracer(exporter.Tracer()),
	}
	if opts.demo > 0 {
		ch := make(chan notify.Message, cfg.MaxVisible)
		appOpts = append(appOpts, ui.WithIncoming(ch))
		go produce(ctx, &notify.ChanEmitter{Ch: ch}, opts.demo, logger)
	}

	logger.Printf("starting: show=%v hide=%v lifetime=%v fps=%d max=%d",
		cfg.ShowDuration, cfg.HideDuration, cfg.Lifetime, cfg.FPS, cfg.MaxVisible)

	model := ui.NewAppModel(cfg, appOpts...).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "toastfx: %v\n", err)
		os.Exit(1)
	}
}
