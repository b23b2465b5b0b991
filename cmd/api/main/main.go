//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/server"
)

var ginLambda *ginadapter.GinLambda

func init() {
	engine, _, err := server.Bootstrap(context.Background())
	if err != nil {
		panic(err)
	}
	ginLambda = ginadapter.New(server.NewRouter(engine))
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
