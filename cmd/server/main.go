package main

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/junkd0g/labchart/internal/config"
	"github.com/junkd0g/labchart/internal/report"
	"github.com/junkd0g/labchart/internal/tools"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}

	builder, err := report.NewBuilder(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("invalid code table")
	}

	s := server.NewMCPServer(
		"labchart",
		"1.0.0",
	)

	tools.New(builder).Register(s)

	if err := server.ServeStdio(s); err != nil {
		logger.WithError(err).Fatal("server error")
	}
}
