package main

import (
	"context"
	"log/slog"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/artblock-labs/plinth/dynamo"
	"github.com/artblock-labs/plinth/lambda"
	"github.com/artblock-labs/plinth/market"
	"github.com/artblock-labs/plinth/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("aws config failed", "error", err)
		os.Exit(1)
	}

	backend := dynamo.New(dynamodb.NewFromConfig(cfg), dynamo.Config{
		Table: os.Getenv("PLINTH_DYNAMO_TABLE"),
	})

	m := market.New(store.New(backend), logger)
	if err := m.Seed(ctx); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	awslambda.Start(lambda.NewHandler(m, logger).Handle)
}
