package main

import (
	"context"
	"errors"
	"exposure/internal/api"
	"exposure/internal/api/handler/v1handler"
	"exposure/internal/config"
	"exposure/internal/exposure"
	"exposure/internal/scanner"
	"exposure/internal/worker"
	"exposure/pkg/logger"
	"exposure/pkg/metrics"
	"exposure/pkg/notifier"
	"exposure/pkg/notifier/redisnotifier"
	"exposure/pkg/prober/fastprobe"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getNotifier connects to redis when it is configured. Without redis, events
// are dropped and the event stream stays silent.
func getNotifier(ctx context.Context, cfg *config.Config) (notifier.Notifier, func()) {
	if cfg.Redis.Addr == "" {
		logger.Warn(ctx, "redis is not configured, scan events will not be published")

		return notifier.Nop{}, func() {}
	}

	ntf, err := redisnotifier.New(ctx, redisnotifier.Options{
		Addr:          cfg.Redis.Addr,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		ChannelPrefix: cfg.Redis.ChannelPrefix,
		DialTimeout:   cfg.Redis.DialTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create redis notifier", zap.Error(err))
	}

	return ntf, func() {
		logger.Info(ctx, "closing redis client...")
		if err := ntf.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// newEngine builds the probing engine over a fasthttp client.
func newEngine(cfg *config.Config) (*exposure.Engine, func()) {
	// a saturated host pool waits within the probe budget instead of failing
	client := fastprobe.New(fastprobe.Options{
		UserAgent:          cfg.Prober.UserAgent,
		FallbackTimeout:    cfg.Prober.Timeout,
		MaxConnsPerHost:    cfg.Prober.MaxConnsPerHost,
		MaxConnWaitTimeout: cfg.Prober.Timeout,
		ReadBufferSize:     cfg.Prober.ReadBufferSize,
	})
	dispatcher := exposure.NewDispatcher(client, exposure.DispatcherOptions{
		Timeout:        cfg.Prober.Timeout,
		MaxConcurrency: cfg.Prober.MaxConcurrency,
		RatePerSecond:  cfg.Prober.RatePerSecond,
	})

	return exposure.NewEngine(dispatcher, nil), client.CloseIdleConnections
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdownMetrics, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not set up metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			ntf, closeNotifier := getNotifier(ctx, cfg)
			defer closeNotifier()

			engine, closeProber := newEngine(cfg)
			defer closeProber()

			scn, err := scanner.New(strg, engine, ntf, scanner.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create scanner", zap.Error(err))
			}

			// workers run on a context that outlives the signal so in-flight scans can finish
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, scn, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Scanner:    scn,
				Subscriber: ntf,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				// running scans are interrupted and record themselves failed
				logger.Warn(ctx, "workers did not stop in time, cancelling jobs", zap.Error(err))
				cancelCtx, cancelStop := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancelStop()
				if err := riverClient.StopAndCancel(cancelCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}
			}

			if err := shutdownMetrics(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down metrics", zap.Error(err))
			}
		},
	}

	return cmd
}
