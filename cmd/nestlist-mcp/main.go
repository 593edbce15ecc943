package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	mcpadapter "nestlist/internal/adapters/mcp"
	"nestlist/internal/adapters/storage"
	"nestlist/internal/config"
)

func main() {
	cfgFlag := flag.String("config", "", "config file")
	dbFlag := flag.String("db", "", "path to the database")
	flag.Parse()

	cfg, err := config.Load(*cfgFlag)
	if err != nil {
		logrus.Fatalf("nestlist-mcp: %v", err)
	}
	if *dbFlag != "" {
		cfg.Storage = config.StorageSQLite
		cfg.DBPath = *dbFlag
	}

	// stdout carries the protocol
	log, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		logrus.Fatalf("nestlist-mcp: %v", err)
	}

	repo, err := storage.Open(cfg, log)
	if err != nil {
		log.Fatalf("nestlist-mcp: %v", err)
	}
	defer repo.Close()

	mcpServer := server.NewMCPServer(
		"nestlist-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, cfg.List)
	mcpadapter.RegisterWriteTools(mcpServer, repo, cfg.List, log)

	log.WithField("storage", cfg.Storage).Info("serving on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Errorf("nestlist-mcp: %v", err)
	}
}
