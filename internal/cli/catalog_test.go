package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, _, err := execute(t, "save", "x * y", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "saved mul(x, y)")
	assert.Contains(t, out, "hash: ")

	out, _, err = execute(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "x * y")
}

func TestSaveIsIdempotent(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")

	_, _, err := execute(t, "save", "(x + null) * y", "--db", db)
	require.NoError(t, err)
	// Structurally equal tree from different source text: no new record.
	_, _, err = execute(t, "save", "x * y", "--db", db)
	require.NoError(t, err)

	out, _, err := execute(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "(x + null) * y")
	assert.NotContains(t, out, "\n2  ")
}

func TestListEmptyCatalog(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, _, err := execute(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog is empty")
}

func TestSaveDivisionByNullFails(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")

	_, _, err := execute(t, "save", "a / null", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
