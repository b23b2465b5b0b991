package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/server"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

func main() {
	network := flag.String("network", "base", "network to price on (base, ethereum, solana)")
	token := flag.String("token", "", "token address or native symbol")
	amount := flag.Float64("amount", 1, "human-readable token amount")
	interval := flag.Duration("interval", 30*time.Second, "time between samples")
	duration := flag.Duration("duration", 5*time.Minute, "total run time")
	flag.Parse()

	if *token == "" {
		fmt.Fprintln(os.Stderr, "-token is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, closeFn, err := server.Bootstrap(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer closeFn()
	defer logger.Sync()

	report, err := engine.Monitor.Run(ctx, business.MonitorRequest{
		Network:  business.ParseNetwork(*network),
		Token:    *token,
		Amount:   *amount,
		Interval: *interval,
		Duration: *duration,
	})
	if err != nil {
		logger.Error("Price monitor failed", zap.Error(err))
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		logger.Error("Failed to write report", zap.Error(err))
		os.Exit(1)
	}
}
