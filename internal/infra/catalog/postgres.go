package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
)

// Querier is the subset of pgxpool.Pool the loader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const selectBillboards = `
	SELECT billboard_code, id, latitude, longitude, region, size, type, monthly_rate, traffic_level
	FROM billboards
	ORDER BY id
`

// LoadPostgres reads the billboards table once and freezes it into a MemoryCatalog.
func LoadPostgres(ctx context.Context, q Querier) (*MemoryCatalog, error) {
	rows, err := q.Query(ctx, selectBillboards)
	if err != nil {
		return nil, fmt.Errorf("query billboards: %w", err)
	}
	defer rows.Close()

	var items []billboard.Billboard
	for rows.Next() {
		item, err := scanBillboard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan billboard: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate billboards: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("billboards table is empty")
	}
	return NewMemoryCatalog(items)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBillboard(row rowScanner) (billboard.Billboard, error) {
	var (
		b       billboard.Billboard
		id      int32
		kind    string
		traffic string
	)
	if err := row.Scan(&b.Code, &id, &b.Latitude, &b.Longitude, &b.Region, &b.Size, &kind, &b.MonthlyRate, &traffic); err != nil {
		return billboard.Billboard{}, err
	}
	b.ID = int(id)
	b.Type = billboard.Kind(kind)
	b.TrafficLevel = billboard.TrafficLevel(traffic)
	return b, nil
}
