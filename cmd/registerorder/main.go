// Lambda entrypoint for the RegisterOrder function.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jacentio/platter/fn"
	"github.com/jacentio/platter/internal/envcfg"
	"github.com/jacentio/platter/store"
)

func main() {
	logger := slog.Default()

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("load aws config", "error", err)
		os.Exit(1)
	}

	s := store.New(dynamodb.NewFromConfig(cfg), store.Config{
		Table: envcfg.Get("TABLE_NAME", "Orders"),
	})

	h := fn.NewRegisterHandler(s, fn.Headers{AllowMethods: "POST,OPTIONS"}, logger)
	lambda.Start(h.RegisterOrder)
}
