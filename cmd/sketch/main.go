// cmd/sketch/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/sketch/internal/app"
	"github.com/bethropolis/sketch/internal/config"
	"github.com/bethropolis/sketch/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	cfg, loadErr := config.Load(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	logger.SetDebugFilter(*flags.DebugLog)
	logOutput, err := cfg.Logger.OpenOutput()
	if err != nil {
		stlog.Fatalf("Failed to open log output: %v", err)
	}
	defer logOutput.Close()
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if loadErr != nil {
		logger.Warnf("Config: %v (continuing with defaults)", loadErr)
	}
	for _, problem := range cfg.Problems() {
		logger.Warnf("Config: %s", problem)
	}
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)

	// --- Create and Run App ---
	sketchApp, err := app.NewApp(cfg, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := sketchApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
