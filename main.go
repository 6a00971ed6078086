package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rental-sim/config"
	"rental-sim/domain"
	httpLayer "rental-sim/http"
	"rental-sim/logger"
	"rental-sim/report"
	"rental-sim/repository"
	"rental-sim/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Debug)

	rootCmd := &cobra.Command{
		Use:   "rental-sim",
		Short: "Rental property cash flow and return simulator",
	}

	rootCmd.AddCommand(serveCmd(cfg, log))
	rootCmd.AddCommand(simulateCmd(cfg, log))
	rootCmd.AddCommand(compareCmd(cfg, log))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the simulation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer(cfg, log)
		},
	}
	cmd.Flags().StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "listen address")
	return cmd
}

func simulateCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var (
		scenarioPath string
		years        int
		csvPath      string
		html         bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scenario file and print the reports",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			file, err := config.LoadScenarioFile(scenarioPath)
			if err != nil {
				return err
			}
			if years > 0 {
				file.Years = years
			}
			if file.Years == 0 {
				file.Years = cfg.DefaultYears
			}
			return runSimulate(cfg, log, file, csvPath, html)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (.yaml, .yml, .hjson, .json)")
	cmd.Flags().IntVarP(&years, "years", "y", 0, "holding period in years (overrides the file)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the month table to this CSV file")
	cmd.Flags().BoolVar(&html, "html", false, "print the reports as HTML instead of Markdown")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func compareCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var (
		scenarioPath string
		minYears     int
		maxYears     int
		preference   string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank holding periods for one scenario file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			file, err := config.LoadScenarioFile(scenarioPath)
			if err != nil {
				return err
			}
			if maxYears == 0 {
				_, maxYears = service.DefaultHorizonRange(cfg.DefaultYears)
			}

			result, err := service.NewHorizonComparisonService(log).CompareHorizons(domain.HorizonComparisonInput{
				Scenario:   file.Scenario,
				MinYears:   minYears,
				MaxYears:   maxYears,
				Preference: preference,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Recommended holding period: %d years (%s)\n\n", result.RecommendedYears, result.Preference)
			fmt.Println("| years | total return | appreciation | avg income | score |")
			fmt.Println("|---|---|---|---|---|")
			for _, o := range result.Options {
				fmt.Printf("| %d | %.2f%% | %.2f%% | %.2f | %.2f |\n",
					o.Years, o.AnnualizedTotalReturn*100, o.AnnualizedAppreciation*100, o.AverageAnnualIncome, o.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (.yaml, .yml, .hjson, .json)")
	cmd.Flags().IntVar(&minYears, "min-years", service.MinHoldingYears, "shortest holding period")
	cmd.Flags().IntVar(&maxYears, "max-years", 0, "longest holding period (defaults to DEFAULT_YEARS)")
	cmd.Flags().StringVar(&preference, "preference", domain.PreferBalanced, "total_return, income or balanced")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func runSimulate(cfg *config.Config, log *logger.Logger, file config.ScenarioFile, csvPath string, html bool) error {
	simulationService := service.NewSimulationService(
		repository.NewSimulationRepositoryMemory(),
		repository.NewMockCache(),
		log,
	)

	run, err := simulationService.RunSimulation(domain.SimulationRequest{
		Scenario: file.Scenario,
		Years:    file.Years,
	})
	if err != nil {
		return err
	}

	out := report.ScenarioReport(run.Scenario) + "\n" + report.ResultReport(run)
	if html {
		if out, err = report.ToHTML(out); err != nil {
			return err
		}
	}
	fmt.Println(out)

	if csvPath != "" {
		if _, err := report.NewCSVWriter(cfg.CSVOutputDir, log).Write(run, csvPath); err != nil {
			return err
		}
	}
	return nil
}

func runServer(cfg *config.Config, log *logger.Logger) error {
	simulationRepo := repository.NewSimulationRepositoryMemoryWithLimit(cfg.MaxStoredRuns)
	cache := newCache(cfg, log)

	simulationService := service.NewSimulationService(simulationRepo, cache, log)
	simulationHandler := httpLayer.NewSimulationHandler(simulationService, log, cfg.DefaultYears)
	comparisonHandler := httpLayer.NewHorizonComparisonHandler(service.NewHorizonComparisonService(log), log, cfg.DefaultYears)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/simulation/run",
		httpLayer.RateLimitMiddleware(
			rateLimiter, log,
			http.HandlerFunc(simulationHandler.RunSimulation),
		),
	)

	mux.Handle(
		"/simulation/table",
		httpLayer.RateLimitMiddleware(
			rateLimiter, log,
			http.HandlerFunc(simulationHandler.GetTable),
		),
	)

	mux.Handle(
		"/simulation/compare",
		httpLayer.RateLimitMiddleware(
			rateLimiter, log,
			http.HandlerFunc(comparisonHandler.CompareHorizons),
		),
	)

	mux.Handle(
		"/scenario/report",
		httpLayer.RateLimitMiddleware(
			rateLimiter, log,
			http.HandlerFunc(simulationHandler.ScenarioReport),
		),
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		log.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Error during server shutdown: %v", err)
	}

	log.Info("Server exited")
	return nil
}

// newCache uses Redis when REDIS_ADDR is set and reachable, otherwise an
// in-process cache.
func newCache(cfg *config.Config, log *logger.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewBoundedMockCache(cfg.MaxStoredRuns)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("Redis at %s unavailable, keeping runs in memory: %v", cfg.RedisAddr, err)
		_ = redisCache.Close()
		return repository.NewBoundedMockCache(cfg.MaxStoredRuns)
	}

	log.Info("Mirroring simulation runs to Redis at %s", cfg.RedisAddr)
	return redisCache
}
