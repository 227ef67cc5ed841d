package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Record is one catalog entry.
type Record struct {
	Seq       int64  `json:"seq"`
	Hash      string `json:"hash"`
	Source    string `json:"source"`
	Canonical string `json:"canonical"`
}

// ErrNotFound is returned by Get when no record has the given hash.
var ErrNotFound = errors.New("expression not found")

// Get returns the record stored under hash.
func (c *Catalog) Get(ctx context.Context, hash string) (*Record, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT seq, hash, source, canonical
		FROM expressions
		WHERE hash = ?
	`, hash)

	var rec Record
	err := row.Scan(&rec.Seq, &rec.Hash, &rec.Source, &rec.Canonical)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", hash, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", hash, err)
	}
	return &rec, nil
}

// List returns all records in insertion order.
func (c *Catalog) List(ctx context.Context) ([]Record, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT seq, hash, source, canonical
		FROM expressions
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("list expressions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Seq, &rec.Hash, &rec.Source, &rec.Canonical); err != nil {
			return nil, fmt.Errorf("list expressions: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expressions: %w", err)
	}
	return out, nil
}
