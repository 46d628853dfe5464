package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/unischedule/internal/bootstrap"
	"github.com/yigit/unischedule/internal/config"
	"github.com/yigit/unischedule/internal/db"
	"github.com/yigit/unischedule/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("dbtool failed")
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dbtool",
		Usage: "database chores for the scheduling service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   bootstrap.DefaultConfigPath,
				Usage:   "path to the YAML configuration",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "wait",
				Usage:  "block until the database accepts connections",
				Action: runWait,
			},
			{
				Name:   "setup",
				Usage:  "apply schema migrations",
				Action: withDatabase(bootstrap.RunMigrations),
			},
			{
				Name:  "seed",
				Usage: "insert the sample dataset unless data is present",
				Action: withDatabase(func(ctx context.Context, conn db.DBTX, lgr zerolog.Logger) error {
					return bootstrap.SeedSampleData(ctx, conn, lgr)
				}),
			},
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, zerolog.Logger, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return nil, zerolog.Logger{}, cli.Exit(err.Error(), 1)
	}
	return cfg, lgr, nil
}

func runWait(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := bootstrap.WaitForDatabase(c.Context, cfg, lgr); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// withDatabase opens a pool, runs fn against it and closes the pool
func withDatabase(fn func(ctx context.Context, conn db.DBTX, lgr zerolog.Logger) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, lgr, err := loadConfig(c)
		if err != nil {
			return err
		}

		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return cli.Exit(fmt.Sprintf("connect: %v", err), 1)
		}
		defer database.Close()

		if err := fn(c.Context, database.Pool, lgr); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	}
}
