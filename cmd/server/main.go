package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/artblock-labs/plinth/api"
	"github.com/artblock-labs/plinth/dynamo"
	"github.com/artblock-labs/plinth/market"
	"github.com/artblock-labs/plinth/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	addr := envOrDefault("PLINTH_HTTP_ADDR", "127.0.0.1:8080")

	ctx := context.Background()

	backend, err := newBackend(ctx)
	if err != nil {
		logger.Error("backend setup failed", "error", err)
		os.Exit(1)
	}

	s := store.New(backend)
	m := market.New(s, logger)

	if err := m.Seed(ctx); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(m, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// newBackend picks the store backend: DynamoDB when PLINTH_DYNAMO_TABLE is
// set, in-memory otherwise.
func newBackend(ctx context.Context) (store.Backend, error) {
	table := os.Getenv("PLINTH_DYNAMO_TABLE")
	if table == "" {
		return store.NewMemoryBackend(), nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return dynamo.New(dynamodb.NewFromConfig(cfg), dynamo.Config{Table: table}), nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
