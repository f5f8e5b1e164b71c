package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-ai-go/internal/api/handler"
	"career-ai-go/internal/api/router"
	"career-ai-go/internal/config"
	"career-ai-go/internal/llm"
	appCoreLogger "career-ai-go/internal/logger"
	"career-ai-go/internal/parser"
	"career-ai-go/internal/processor"

	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
)

var (
	version     = "1.0.0"        //nolint:gochecknoglobals
	serviceName = "career-ai-go" //nolint:gochecknoglobals
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	initLogger(cfg)
	glog.Infof("%s %s starting", serviceName, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	extractor, err := parser.NewResumeTextExtractor(ctx,
		parser.WithExtractorLogger(log.New(appCoreLogger.Logger, "[ResumeExtractor] ", log.LstdFlags)),
	)
	if err != nil {
		glog.Fatalf("failed to create resume text extractor: %v", err)
	}
	glog.Info("resume text extractor ready")

	completionClient := llm.NewGroqCompletionClient(cfg.LLM,
		llm.WithCompletionLogger(log.New(appCoreLogger.Logger, "[GroqClient] ", log.LstdFlags)),
	)
	if completionClient.IsAvailable() {
		glog.Infof("completion client ready (model=%s)", cfg.LLM.Model)
	} else {
		glog.Warn("no GROQ_API_KEY configured, all AI features will serve fallback data")
	}

	advisor := processor.NewCareerAdvisor(completionClient,
		processor.WithAdvisorLogger(log.New(appCoreLogger.Logger, "[CareerAdvisor] ", log.LstdFlags)),
	)

	careerHandler := handler.NewCareerHandler(cfg, extractor, advisor)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Upload.MaxSizeBytes)+1<<20),
	)

	router.RegisterRoutes(h, careerHandler)
	glog.Info("HTTP routes registered")

	go func() {
		glog.Infof("HTTP server listening on %s", cfg.Server.Address)
		if err := h.Run(); err != nil {
			glog.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("server shutdown failed: %v", err)
	}
	glog.Info("shutdown complete")
}

func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	switch cfg.Logger.Level {
	case "debug":
		glog.SetLevel(glog.LevelDebug)
	case "warn":
		glog.SetLevel(glog.LevelWarn)
	case "error":
		glog.SetLevel(glog.LevelError)
	default:
		glog.SetLevel(glog.LevelInfo)
	}
}
