// Lambda entrypoint for the ProxyRegisterOrder function.
package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/platter/fn"
	"github.com/jacentio/platter/proxy"
)

func main() {
	forwarder := &proxy.Forwarder{
		TargetURL: os.Getenv("TARGET_ORDER_URL"),
		Key:       os.Getenv("TARGET_ORDER_KEY"),
	}

	h := fn.NewProxyHandler(forwarder, fn.Headers{
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}, slog.Default())
	lambda.Start(h.Handle)
}
