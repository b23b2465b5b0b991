package db

import (
	"context"

	"github.com/google/uuid"
)

const listBusinessTokens = `-- name: ListBusinessTokens :many
SELECT bt.symbol, bt.name, n.network_key, bt.contract_address, bt.is_active, bt.trading_enabled
FROM business_tokens bt
JOIN networks n ON n.id = bt.network_id
WHERE bt.business_id = $1 AND bt.deleted_at IS NULL
ORDER BY n.network_key, bt.symbol
`

type ListBusinessTokensRow struct {
	Symbol          string
	Name            string
	NetworkKey      string
	ContractAddress string
	IsActive        bool
	TradingEnabled  bool
}

func (q *Queries) ListBusinessTokens(ctx context.Context, businessID uuid.UUID) ([]ListBusinessTokensRow, error) {
	rows, err := q.db.Query(ctx, listBusinessTokens, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBusinessTokensRow{}
	for rows.Next() {
		var i ListBusinessTokensRow
		if err := rows.Scan(
			&i.Symbol,
			&i.Name,
			&i.NetworkKey,
			&i.ContractAddress,
			&i.IsActive,
			&i.TradingEnabled,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
