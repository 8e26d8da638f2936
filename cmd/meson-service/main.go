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

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/meson/internal/config"
	"github.com/weiawesome/meson/internal/generator"
	mesongrpc "github.com/weiawesome/meson/internal/grpc"
	"github.com/weiawesome/meson/internal/handler"
	"github.com/weiawesome/meson/internal/metrics"
	pkglog "github.com/weiawesome/meson/pkg/log"
	"github.com/weiawesome/meson/pkg/meson"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// 2. Build the meson generator
	bootLogger := pkglog.New(pkglog.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, ServiceName: "meson-service"})
	fp, pinned, err := cfg.Meson.PinnedFingerprint()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("invalid fingerprint override")
	}
	var opts []meson.Option
	if pinned {
		opts = append(opts, meson.WithFingerprint(fp))
	} else {
		opts = append(opts, meson.WithFingerprintProvider(meson.NewFingerprintProvider(
			meson.WithSources(meson.DefaultSources(cfg.Meson.CGroupPath)...),
			meson.WithLogger(bootLogger),
		)))
	}
	mg := meson.NewGenerator(opts...)

	// 3. Init logger tagged with the generator id
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "meson-service",
		GeneratorID: mg.FingerprintHex(),
	})
	logger := pkglog.L()
	pkglog.NewRequestID = mg.NewHex

	logger.Info().Msg("starting meson-service")

	gen, err := generator.NewMesonGenerator(mg, cfg.Meson.Format, cfg.Meson.MaxBatch)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create meson generator")
	}
	logger.Info().
		Str("format", cfg.Meson.Format).
		Int("max_batch", cfg.Meson.MaxBatch).
		Bool("pinned", pinned).
		Int32("sequence", mg.CurrentSequence()).
		Msg("meson generator initialized")

	// 4. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(mg)
	}

	// 5. Start gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := mesongrpc.StartGRPCServer(grpcAddr, gen, m, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	// 6. Setup Gin router + HTTP server
	if !cfg.Log.Pretty {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	handler.NewHandler(gen, m).RegisterRoutes(r)
	if m != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
		logger.Info().Str("path", cfg.Metrics.Path).Msg("metrics enabled")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info().Str("addr", addr).Str(pkglog.FieldTransport, "http").Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// 7. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down meson-service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP server forced to shutdown")
	}
	grpcServer.GracefulStop()

	logger.Info().
		Uint64("reseeds", mg.Reseeds()).
		Msg("meson-service stopped")
}
