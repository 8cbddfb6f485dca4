package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configPath string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gtadmin",
	Short: "Gymtracker maintenance tool",
	Long: `gtadmin runs maintenance tasks against the gymtracker database.

EXAMPLES:

  gtadmin migrate up
  gtadmin populate --superuser admin --password secret
  gtadmin populate --names-file names.yaml --demo-user demo --demo-sets 300
  gtadmin merge-names --from "bench" --into "Bench Press"
  gtadmin reset-password --username bob --password n3w
  gtadmin prs --username bob`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(logging.GetLevel(logLevel))

		var err error
		cfg, err = config.Load(envFlag, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level [trace | debug | info | warn | error]")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(mergeNamesCmd)
	rootCmd.AddCommand(resetPasswordCmd)
	rootCmd.AddCommand(prsCmd)
}

func dbParams() db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: os.Getenv("GYMTRACKER_POSTGRES_PASS"),
	}
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := db.NewDBPool(ctx, dbParams())
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}
