package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/inkwell/internal/buildinfo"
	"github.com/dmitrijs2005/inkwell/internal/client/cli"
	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/config"
	"github.com/dmitrijs2005/inkwell/internal/client/services"
	"github.com/dmitrijs2005/inkwell/internal/client/session"
	"github.com/dmitrijs2005/inkwell/internal/filex"
	"github.com/dmitrijs2005/inkwell/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}

	for _, p := range []string{cfg.StateDSN, cfg.CookieFile} {
		if err := filex.EnsureParentDir(p); err != nil {
			return fmt.Errorf("prepare %s: %w", p, err)
		}
	}

	db, err := client.InitDatabase(ctx, cfg.StateDSN)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer db.Close()

	api, err := client.NewHTTPClient(client.Options{
		BaseURL:    cfg.APIBaseURL,
		Timeout:    cfg.RequestTimeout,
		CookieFile: cfg.CookieFile,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	persister := session.NewSQLitePersister(db)
	store := session.NewStore(
		session.WithPersister(persister),
		session.WithLogger(logger),
	)
	if _, err := store.Load(ctx); err != nil {
		logger.Warn(ctx, "persisted session ignored", "error", err)
	}
	if cfg.RevalidateSession {
		services.NewSessionChecker(store, api, logger).Check(ctx)
	}

	app := cli.NewApp(cli.Deps{
		Auth:      services.NewAuthService(api, store, logger),
		Articles:  services.NewArticleService(api, store, logger),
		Store:     store,
		Creds:     api,
		Logger:    logger,
		Snapshots: persister,
	}, stdin, stdout)

	return app.Run(ctx)
}
