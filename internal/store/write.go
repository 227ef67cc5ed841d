package store

import (
	"context"
	"fmt"

	"github.com/ghislainb/fieldexpr/internal/canon"
	"github.com/ghislainb/fieldexpr/internal/expr"
)

// Put saves a tree under its content hash and returns the hash.
// Uses ON CONFLICT(hash) DO NOTHING for idempotency - a structurally
// equal tree saved twice (even from different source text) keeps its
// first record.
func (c *Catalog) Put(ctx context.Context, source string, o expr.Operand) (string, error) {
	canonical, err := canon.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("put expression: %w", err)
	}
	hash, err := canon.TreeHash(o)
	if err != nil {
		return "", fmt.Errorf("put expression: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO expressions (hash, source, canonical)
		VALUES (?, ?, ?)
		ON CONFLICT(hash) DO NOTHING
	`, hash, source, string(canonical))
	if err != nil {
		return "", fmt.Errorf("put expression: %w", err)
	}
	return hash, nil
}
