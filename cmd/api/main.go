package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/container"
	"github.com/saulo-duarte/tabuada-lambda/internal/router"
)

func main() {
	c := container.New()
	defer c.Close()

	handler := router.New(router.RouterConfig{
		RosterHandler:  c.RosterContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		ResultHandler:  c.ResultContainer.Handler,
		AllowedOrigins: c.Settings.CORSAllowedOrigins,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	addr := ":" + c.Settings.Port
	config.Logger.WithField("addr", addr).Info("Starting HTTP server")
	if err := http.ListenAndServe(addr, handler); err != nil {
		config.Logger.WithError(err).Fatal("HTTP server stopped")
	}
}
