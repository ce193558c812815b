package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	subtree, err := migrationsFS()
	require.NoError(t, err)

	files, err := fs.Glob(subtree, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(subtree, "001_create_accounts.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CONSTRAINT accounts_email_key UNIQUE (email)")
	assert.Contains(t, string(body), "---- create above / drop below ----")
}
