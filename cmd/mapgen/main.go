// Command mapgen prints generated worlds as text without opening a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/metrics"
)

type options struct {
	seed        int64
	count       int
	width       int
	height      int
	configPath  string
	check       bool
	quiet       bool
	metricsAddr string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.Int64Var(&opts.seed, "seed", 0, "Seed of the first world")
	fs.IntVar(&opts.count, "count", 1, "Number of worlds to generate from consecutive seeds")
	fs.IntVar(&opts.width, "width", 0, "Width of the world (0 keeps the configured width)")
	fs.IntVar(&opts.height, "height", 0, "Playable height of the world (0 keeps the configured height)")
	fs.StringVar(&opts.configPath, "config", "", "Generator config file (YAML)")
	fs.BoolVar(&opts.check, "check", false, "Fail when any floor tile is unreachable from the avatar")
	fs.BoolVar(&opts.quiet, "q", false, "Only print the summary line of each world")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address after generating, e.g. :2112")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.count < 1 {
		fmt.Fprintf(stderr, "Count must be at least 1\n")
		return 2
	}

	reg := prometheus.NewRegistry()
	genMetrics, err := metrics.NewGenerationMetrics(reg)
	if err != nil {
		fmt.Fprintf(stderr, "Error registering metrics: %v\n", err)
		return 1
	}

	generator := generation.NewDungeonGenerator(cfg)
	generator.SetLogger(logger)
	generator.SetMetrics(genMetrics)

	status := 0
	for i := 0; i < opts.count; i++ {
		if i > 0 && !opts.quiet {
			fmt.Fprintln(stdout, "---")
		}
		if err := generateOne(stdout, generator, opts.seed+int64(i), opts); err != nil {
			fmt.Fprintf(stderr, "seed %d: %v\n", opts.seed+int64(i), err)
			status = 1
		}
	}

	if opts.metricsAddr != "" {
		if err := serveMetrics(opts.metricsAddr, reg, logger); err != nil {
			fmt.Fprintf(stderr, "Error serving metrics: %v\n", err)
			return 1
		}
	}
	return status
}

func generateOne(w io.Writer, generator *generation.DungeonGenerator, seed int64, opts options) error {
	cfg := generator.Config()
	world := components.NewMapComponent(cfg.Width, cfg.Height, cfg.HUDRows)
	layout, err := generator.Generate(world, seed)
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Fprint(w, world.String())
	}
	fmt.Fprintf(w, "seed=%d rooms=%d hallways=%d avatar=%s fingerprint=%016x\n",
		seed, len(layout.Rooms), len(layout.Hallways), layout.Avatar, world.Fingerprint())

	if opts.check {
		return generation.ValidateConnectivity(world, layout.Avatar)
	}
	return nil
}

// serveMetrics blocks until the process is interrupted
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	logger.Warn("serving metrics, interrupt to exit", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
