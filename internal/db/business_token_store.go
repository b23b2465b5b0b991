package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cyphera/onramp-engine/internal/types/business"
)

// BusinessTokenStore reads business token lists. It only supplies input to
// coverage reports and never writes.
type BusinessTokenStore struct {
	queries *Queries
}

func NewBusinessTokenStore(queries *Queries) *BusinessTokenStore {
	return &BusinessTokenStore{queries: queries}
}

// ListConfiguredTokens groups a business's tokens by network.
func (s *BusinessTokenStore) ListConfiguredTokens(ctx context.Context, businessID uuid.UUID) (map[business.Network][]business.ConfiguredToken, error) {
	rows, err := s.queries.ListBusinessTokens(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business tokens: %w", err)
	}

	byNetwork := make(map[business.Network][]business.ConfiguredToken)
	for _, row := range rows {
		network := business.ParseNetwork(row.NetworkKey)
		byNetwork[network] = append(byNetwork[network], business.ConfiguredToken{
			Symbol:         row.Symbol,
			Name:           row.Name,
			Network:        network,
			Address:        row.ContractAddress,
			IsActive:       row.IsActive,
			TradingEnabled: row.TradingEnabled,
		})
	}
	return byNetwork, nil
}

// OpenPool creates a read pool sized for coverage lookups.
func OpenPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}
