// Package main runs the gymtracker MCP server over stdio.
// The backend mounts the same server at /mcp (streamable HTTP, superusers only).
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymtracker/internal/bodystats"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/exercises"
	"github.com/2beens/gymtracker/internal/logging"
	gtmcp "github.com/2beens/gymtracker/internal/mcp"
	"github.com/2beens/gymtracker/internal/users"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	logFile := flag.String("log-file", "", "log file path (stdout is reserved for the MCP transport)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	if *logFile != "" {
		logging.Setup(logging.LoggerSetupParams{
			LogFileName: *logFile,
			LogLevel:    cfg.LogLevel,
		})
	} else {
		log.SetOutput(os.Stderr)
		log.SetLevel(logging.GetLevel(cfg.LogLevel))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("GYMTRACKER_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	server := gtmcp.NewServer(
		gtmcp.NewContextService(
			gtmcp.NewPoolSchemaRepo(dbPool),
			exercises.NewRepo(dbPool),
			users.NewRepo(dbPool),
			bodystats.NewRepo(dbPool),
		),
		"stdio",
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server stopped: %s", err)
	}
}
