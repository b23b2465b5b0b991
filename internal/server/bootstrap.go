package server

import (
	"context"
	"os"

	"go.uber.org/zap"

	awsclient "github.com/cyphera/onramp-engine/internal/client/aws"
	"github.com/cyphera/onramp-engine/internal/config"
	"github.com/cyphera/onramp-engine/internal/helpers"
	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/metrics"
)

// Bootstrap initializes logging, loads configuration and dials upstreams.
// The returned function releases resources held by the engine.
func Bootstrap(ctx context.Context) (*Engine, func(), error) {
	stage := os.Getenv("STAGE")
	if !helpers.IsValidStage(stage) {
		stage = helpers.StageLocal
	}
	logger.InitLogger(stage)

	secrets, err := secretSource(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(ctx, secrets)
	if err != nil {
		return nil, nil, err
	}

	collector := metrics.New()
	clients, closeFn, err := DialClients(ctx, cfg, collector)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	logger.Info("Onramp engine initialized",
		zap.String("stage", cfg.Stage),
		zap.Any("networks", cfg.EnabledNetworks()))
	return NewEngine(cfg, clients, collector), closeFn, nil
}

// secretSource uses Secrets Manager only when an ARN is configured.
func secretSource(ctx context.Context) (config.SecretSource, error) {
	if os.Getenv("RPC_API_KEY_ARN") == "" && os.Getenv("CMC_API_KEY_ARN") == "" {
		return config.EnvSecretSource{Getenv: os.Getenv}, nil
	}
	return awsclient.NewSecretsManagerClient(ctx)
}
