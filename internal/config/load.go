package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// SecretSource resolves secrets from an ARN env var with a plain env var fallback.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// EnvSecretSource reads secrets straight from the environment.
type EnvSecretSource struct {
	Getenv func(string) string
}

func (s EnvSecretSource) GetSecretString(_ context.Context, _ string, fallbackEnvVar string) (string, error) {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(fallbackEnvVar); v != "" {
		return v, nil
	}
	return "", errors.Errorf("secret not found in env var '%s'", fallbackEnvVar)
}

// Load reads .env (when present), the process environment and the optional
// chain overlay file, then validates the result.
func Load(ctx context.Context, secrets SecretSource) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file loaded", zap.Error(err))
	}
	return LoadFromEnv(ctx, os.Getenv, secrets)
}

// LoadFromEnv builds the configuration from the given env lookup.
func LoadFromEnv(ctx context.Context, getenv func(string) string, secrets SecretSource) (*Config, error) {
	if secrets == nil {
		secrets = EnvSecretSource{Getenv: getenv}
	}
	cfg := DefaultConfig()

	if stage := getenv("STAGE"); stage != "" {
		cfg.Stage = stage
	}
	cfg.LogLevel = getenv("LOG_LEVEL")
	if port := getenv("API_PORT"); port != "" {
		cfg.Port = port
	}
	cfg.DatabaseURL = getenv("DATABASE_URL")

	if path := getenv("CHAIN_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read chain config file %s", path)
		}
		if err := ApplyOverlay(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := applyChainEnv(ctx, cfg, getenv, secrets); err != nil {
		return nil, err
	}
	if err := applyPricingEnv(cfg, getenv); err != nil {
		return nil, err
	}

	if key, err := secrets.GetSecretString(ctx, "CMC_API_KEY_ARN", "CMC_API_KEY"); err == nil {
		cfg.CMCAPIKey = key
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyChainEnv(ctx context.Context, cfg *Config, getenv func(string) string, secrets SecretSource) error {
	timeout, err := durationEnv(getenv, "RPC_TIMEOUT")
	if err != nil {
		return err
	}
	retryDelay, err := durationEnv(getenv, "RPC_RETRY_DELAY")
	if err != nil {
		return err
	}
	maxRetries, err := intEnv(getenv, "RPC_MAX_RETRIES")
	if err != nil {
		return err
	}
	minLiquidity, err := floatEnv(getenv, "MIN_LIQUIDITY_USD")
	if err != nil {
		return err
	}
	solanaMinLiquidity, err := floatEnv(getenv, "SOLANA_MIN_LIQUIDITY_USD")
	if err != nil {
		return err
	}

	var rpcAPIKey string
	for _, chain := range cfg.Chains {
		if timeout != nil {
			chain.Timeout = *timeout
		}
		if retryDelay != nil {
			chain.RetryDelay = *retryDelay
		}
		if maxRetries != nil {
			chain.MaxRetries = *maxRetries
		}

		prefix := strings.ToUpper(string(chain.Network))
		if addr := getenv(prefix + "_RESERVE_ADDRESS"); addr != "" {
			chain.ReserveAddress = addr
		}

		if !chain.IsEVM() {
			if url := getenv(prefix + "_AGGREGATOR_URL"); url != "" {
				chain.AggregatorURL = url
			}
			if solanaMinLiquidity != nil {
				chain.MinLiquidityUSD = *solanaMinLiquidity
			}
			continue
		}

		if minLiquidity != nil {
			chain.MinLiquidityUSD = *minLiquidity
		}
		if url := getenv(prefix + "_RPC_URL"); url != "" {
			chain.RPCURL = url
		}
		if chain.RPCURL == "" && chain.RPCID != "" {
			if rpcAPIKey == "" {
				rpcAPIKey, _ = secrets.GetSecretString(ctx, "RPC_API_KEY_ARN", "RPC_API_KEY")
			}
			if rpcAPIKey != "" {
				chain.RPCURL = "https://" + chain.RPCID + ".infura.io/v3/" + rpcAPIKey
			}
		}
		if chain.RPCURL == "" && chain.Enabled {
			logger.Log.Warn("No RPC endpoint configured, network disabled", zap.String("network", string(chain.Network)))
			chain.Enabled = false
		}
	}
	return nil
}

func applyPricingEnv(cfg *Config, getenv func(string) string) error {
	floats := []struct {
		key    string
		target *float64
	}{
		{"QUICK_PRICE_MIN_USD", &cfg.Pricing.QuickPriceMinUSD},
		{"MAX_PRICE_IMPACT_BPS", &cfg.Pricing.MaxPriceImpactBps},
		{"COVERAGE_THRESHOLD_PCT", &cfg.Pricing.CoverageThresholdPct},
		{"RATE_LIMIT_RPS", &cfg.RateLimit.RequestsPerSecond},
	}
	for _, f := range floats {
		v, err := floatEnv(getenv, f.key)
		if err != nil {
			return err
		}
		if v != nil {
			*f.target = *v
		}
	}
	burst, err := intEnv(getenv, "RATE_LIMIT_BURST")
	if err != nil {
		return err
	}
	if burst != nil {
		cfg.RateLimit.Burst = *burst
	}
	return nil
}

func durationEnv(getenv func(string) string, key string) (*time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		// bare integers are seconds
		secs, intErr := strconv.Atoi(raw)
		if intErr != nil {
			return nil, errors.Wrapf(ErrConfiguration, "%s=%q: %v", key, raw, err)
		}
		d = time.Duration(secs) * time.Second
	}
	return &d, nil
}

func intEnv(getenv func(string) string, key string) (*int, error) {
	raw := getenv(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "%s=%q: %v", key, raw, err)
	}
	return &v, nil
}

func floatEnv(getenv func(string) string, key string) (*float64, error) {
	raw := getenv(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "%s=%q: %v", key, raw, err)
	}
	return &v, nil
}

type overlayFile struct {
	Chains map[string]chainOverlay `yaml:"chains"`
}

type chainOverlay struct {
	Enabled         *bool          `yaml:"enabled"`
	RPCURL          string         `yaml:"rpc_url"`
	AggregatorURL   string         `yaml:"aggregator_url"`
	ReserveAddress  string         `yaml:"reserve_address"`
	MinLiquidityUSD *float64       `yaml:"min_liquidity_usd"`
	FeeTiers        []uint32       `yaml:"fee_tiers"`
	Tokens          []tokenOverlay `yaml:"tokens"`
}

type tokenOverlay struct {
	Symbol   string `yaml:"symbol"`
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Decimals int32  `yaml:"decimals"`
}

// ApplyOverlay merges a YAML chain overlay into cfg. Tokens are appended to
// the known-token table; scalar fields replace the defaults when set.
func ApplyOverlay(cfg *Config, data []byte) error {
	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return errors.Wrap(ErrConfiguration, "parse chain config overlay: "+err.Error())
	}

	for name, o := range overlay.Chains {
		network := business.ParseNetwork(name)
		chain, ok := cfg.Chains[network]
		if !ok {
			return errors.Wrapf(ErrConfiguration, "overlay references unknown network %q", name)
		}
		if o.Enabled != nil {
			chain.Enabled = *o.Enabled
		}
		if o.RPCURL != "" {
			chain.RPCURL = o.RPCURL
		}
		if o.AggregatorURL != "" {
			chain.AggregatorURL = o.AggregatorURL
		}
		if o.ReserveAddress != "" {
			chain.ReserveAddress = o.ReserveAddress
		}
		if o.MinLiquidityUSD != nil {
			chain.MinLiquidityUSD = *o.MinLiquidityUSD
		}
		if len(o.FeeTiers) > 0 {
			chain.FeeTiers = append([]uint32(nil), o.FeeTiers...)
		}
		for _, t := range o.Tokens {
			chain.Tokens = append(chain.Tokens, business.TokenInfo{
				Symbol:   t.Symbol,
				Name:     t.Name,
				Address:  t.Address,
				Decimals: t.Decimals,
				Network:  network,
			})
		}
	}
	return nil
}
