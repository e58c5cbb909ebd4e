package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/campsim/config"
	"github.com/alejandrodnm/campsim/internal/adapters/report"
	"github.com/alejandrodnm/campsim/internal/ports"
	"github.com/alejandrodnm/campsim/internal/simulator"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (empty = built-in defaults)")
	output := flag.String("output", "", "write results to this CSV file")
	chartPath := flag.String("chart", "", "write a profit/ROI bar chart to this PNG file")
	validate := flag.Bool("validate", false, "print step-by-step funnel arithmetic per scenario")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")

	cpvSmall := flag.Float64("cpv_small", 0.06, "cost per view for small-tier scenarios")
	cpvLarge := flag.Float64("cpv_large", 0.05, "cost per view for large-tier scenarios")
	ctrSmall := flag.Float64("ctr_small", 0.05, "click-through rate for small-tier scenarios")
	ctrLarge := flag.Float64("ctr_large", 0.06, "click-through rate for large-tier scenarios")
	convSmall := flag.Float64("conv_small", 0.04, "conversion rate for small-tier scenarios")
	convLarge := flag.Float64("conv_large", 0.05, "conversion rate for large-tier scenarios")
	revenuePerSale := flag.Float64("revenue_per_sale", 100, "revenue per sale in dollars")
	profitPerSale := flag.Float64("profit_per_sale", 50, "profit per sale in dollars")
	flag.Parse()

	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err, "path", *configPath)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	// Solo los flags pasados explícitamente pisan el YAML; sus defaults no.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cpv_small":
			cfg.Simulation.Small.CPV = *cpvSmall
		case "cpv_large":
			cfg.Simulation.Large.CPV = *cpvLarge
		case "ctr_small":
			cfg.Simulation.Small.CTR = *ctrSmall
		case "ctr_large":
			cfg.Simulation.Large.CTR = *ctrLarge
		case "conv_small":
			cfg.Simulation.Small.ConvRate = *convSmall
		case "conv_large":
			cfg.Simulation.Large.ConvRate = *convLarge
		case "revenue_per_sale":
			cfg.Simulation.RevenuePerSale = *revenuePerSale
		case "profit_per_sale":
			cfg.Simulation.ProfitPerSale = *profitPerSale
		case "output":
			cfg.Output.CSV = *output
		case "chart":
			cfg.Output.Chart = *chartPath
		}
	})

	scenarios, err := cfg.BuildScenarios()
	if err != nil {
		slog.Error("invalid scenario table", "err", err)
		os.Exit(1)
	}

	slog.Info("campsim starting",
		"config", *configPath,
		"scenarios", len(scenarios),
		"csv", cfg.Output.CSV,
		"chart", cfg.Output.Chart,
		"validate", *validate,
	)

	reporters := []ports.Reporter{report.NewConsole(*validate)}
	if cfg.Output.CSV != "" {
		reporters = append(reporters, report.NewCSVFile(cfg.Output.CSV))
	}
	if cfg.Output.Chart != "" {
		reporters = append(reporters, report.NewChart(cfg.Output.Chart))
	}

	sim := simulator.New(scenarios, reporters...)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if _, err := sim.Run(ctx); err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	slog.Info("campsim finished cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
