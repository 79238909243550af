package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaswdr/faker"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"notes-api/internal/config"
	"notes-api/internal/di"
	"notes-api/internal/di/providers"
	"notes-api/internal/repository"
	"notes-api/internal/seed"
	"notes-api/internal/server"
	"notes-api/internal/service"
)

func main() {
	app := &cli.App{
		Name:  "notesapi",
		Usage: "notes management HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"NOTES_CONFIG"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create the schema, seed categories and exit",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "insert generated demo notes",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: 25, Usage: "number of notes to create"},
				},
				Action: seedNotes,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "notesapi: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	injector := di.NewContainer(cfg)
	if err := di.Bootstrap(injector); err != nil {
		_ = injector.Shutdown()
		return err
	}

	log := do.MustInvoke[*zap.Logger](injector)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := do.MustInvoke[*providers.HTTPServerHandle](injector)
	runErr := server.Run(ctx, httpServer.Server, cfg.Server.ShutdownTimeout, log)

	// Shutdown all services in reverse order
	if err := injector.Shutdown(); err != nil {
		log.Error("shutdown error", zap.Any("report", err))
	}

	return runErr
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	injector := di.NewContainer(cfg)
	defer func() { _ = injector.Shutdown() }()

	log, err := do.Invoke[*zap.Logger](injector)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := do.Invoke[*providers.DatabaseHandle](injector)
	if err != nil {
		return err
	}

	counts, err := repository.NewCategoryRepository(db.DB).CountNotes(context.Background())
	if err != nil {
		return err
	}
	log.Info("migration complete", zap.Int("categories", len(counts)))
	return nil
}

func seedNotes(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	injector := di.NewContainer(cfg)
	defer func() { _ = injector.Shutdown() }()

	log, err := do.Invoke[*zap.Logger](injector)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	notes, err := do.Invoke[*service.NoteService](injector)
	if err != nil {
		return err
	}

	created, err := seed.Notes(c.Context, notes, faker.New(), c.Int("count"))
	if err != nil {
		return err
	}
	log.Info("seed complete", zap.Int("notes", len(created)))
	return nil
}
