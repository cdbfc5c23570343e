package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newRepositories(t *testing.T) (repository.AccountRepository, repository.PostRepository) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repository.Migrate(context.Background(), db, "sqlite"))
	return repository.NewAccountRepository(db, "sqlite"), repository.NewPostRepository(db, "sqlite")
}
