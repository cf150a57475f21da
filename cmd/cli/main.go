package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/bookarc/internal/client/api"
	"github.com/dmitrijs2005/bookarc/internal/client/cli"
	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/config"
	"github.com/dmitrijs2005/bookarc/internal/client/metrics"
	"github.com/dmitrijs2005/bookarc/internal/client/services"
	"github.com/dmitrijs2005/bookarc/internal/client/session"
	"github.com/dmitrijs2005/bookarc/internal/logging"
	"github.com/dmitrijs2005/bookarc/internal/netx"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := client.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	store := session.NewSQLiteStore(db, logger)

	httpc := client.NewHTTPClient(cfg.APIBaseURL, session.Tokens{Store: store},
		client.WithLogger(logger),
		client.WithMetrics(metrics.New()),
		client.WithRateLimit(cfg.RequestsPerSecond),
		client.WithTimeout(cfg.RequestTimeout),
	)

	endpoint := cfg.IdentityEndpoint
	if endpoint == "" {
		endpoint = services.IdentityEndpoint(cfg.Region)
	}
	identity := services.NewIdentityClient(endpoint, cfg.IdentityClientID, &http.Client{Timeout: cfg.RequestTimeout}, logger)

	uploadClient := &http.Client{Timeout: cfg.RequestTimeout}
	if cfg.SafeUploads {
		uploadClient = netx.NewSafeClient(cfg.RequestTimeout)
	}

	app := cli.NewApp(
		services.NewAuthService(identity, store, httpc, logger),
		services.NewListService(httpc, logger),
		api.New(httpc, netx.NewUploader(uploadClient), store, logger),
		logger,
	)

	app.Run(ctx)

}
