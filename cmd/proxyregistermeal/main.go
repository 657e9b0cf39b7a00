// Lambda entrypoint for the ProxyRegisterMeal function.
package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/platter/fn"
	"github.com/jacentio/platter/proxy"
)

func main() {
	// Missing target config is not fatal here: the handler fails closed
	// with a 500 per request instead.
	forwarder := &proxy.Forwarder{
		TargetURL: os.Getenv("TARGET_MEAL_URL"),
		Key:       os.Getenv("TARGET_MEAL_KEY"),
	}

	h := fn.NewProxyHandler(forwarder, fn.Headers{
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}, slog.Default())
	lambda.Start(h.Handle)
}
