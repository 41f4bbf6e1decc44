package main

import (
	"flag"
	"log"
	"runtime"
	rtdebug "runtime/debug"

	"lumaforge/internal/app"
	"lumaforge/internal/config"
	"lumaforge/internal/logger"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML configuration file")
	flag.Parse()

	configureRuntime()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger := logger.NewConsoleLogger(cfg.ZerologLevel())

	application := app.NewApplication(cfg, appLogger)
	application.Run()
}

// configureRuntime tunes the collector for large transient pixel
// buffers: every transform allocates a full-size output image.
func configureRuntime() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	rtdebug.SetGCPercent(200)
}
