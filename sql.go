package tabfmt

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ReadSQL runs query and loads its result set into a Frame. []byte cells
// become strings; column kinds are inferred from the scanned values.
func ReadSQL(ctx context.Context, db Querier, query string, args ...any) (*Frame, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sql: query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sql: columns: %w", err)
	}

	values := make([][]any, len(names))
	dest := make([]any, len(names))
	ptrs := make([]any, len(names))
	for rows.Next() {
		for i := range dest {
			dest[i] = nil
			ptrs[i] = &dest[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("sql: scan: %w", err)
		}
		for i, v := range dest {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			values[i] = append(values[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sql: rows: %w", err)
	}

	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Values: values[i]}
	}
	return NewFrame(cols...)
}
