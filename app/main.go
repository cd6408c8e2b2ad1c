package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"panelbot/biz/router"
	"panelbot/config"
	"panelbot/di"
	"panelbot/internal/onebot"
	"panelbot/pkg/logger"
)

func init() {
	// .env is optional, real deployments configure through the environment
	_ = godotenv.Load()
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	sync := logger.Init(cfg)
	defer sync()

	if err := cfg.PanelReady(); err != nil {
		// not fatal: commands answer with a configuration hint instead
		zap.L().Warn("panel connection not configured", zap.Error(err))
	}

	svc := di.InitBotService(cfg)

	// HTTP server (bot host webhook)
	h := server.Default(server.WithHostPorts(cfg.HTTP.Address))
	router.MyRouter(h, svc, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// optional OneBot reverse-ws transport
	if cfg.OneBot.GatewayURL != "" {
		client := onebot.NewClient(cfg, svc.Dispatch)
		go client.Run(ctx)
	}

	// Spin handles graceful HTTP shutdown itself; this only stops the
	// OneBot client on the same signal.
	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		s := <-interrupt
		zap.L().Info("app - Run - signal: " + s.String())
		cancel()
	}()

	h.Spin()
}
