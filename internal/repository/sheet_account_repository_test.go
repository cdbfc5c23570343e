package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSheetAccounts() (AccountRepository, *fakeSheetValues) {
	values := newFakeSheetValues()
	return NewSheetAccountRepository(NewSheetStore(values), "customers"), values
}

func TestSheetAccountRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo, _ := newSheetAccounts()
	ctx := context.Background()

	var last int64
	for i := 0; i < 4; i++ {
		id, err := repo.Create(ctx, &models.Account{CompanyName: "Co", Username: fmt.Sprintf("user%d", i)})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 4)
	assert.Equal(t, int64(1), accounts[0].ID)
}

func TestSheetAccountRepository_DuplicateUsernameLeavesStore(t *testing.T) {
	repo, values := newSheetAccounts()
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.Account{CompanyName: "Acme", Username: "acme1", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	writes := values.writes

	_, err = repo.Create(ctx, &models.Account{CompanyName: "Acme2", Username: "acme1", Password: "pw2"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Equal(t, writes, values.writes)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestSheetAccountRepository_DuplicateAgainstUntrimmedLegacyRow(t *testing.T) {
	repo, values := newSheetAccounts()
	values.sheets["customers"] = [][]interface{}{
		header(models.AccountColumns),
		{"5", "Legacy", " acme1 ", "pw"},
	}

	_, err := repo.Create(context.Background(), &models.Account{Username: "acme1"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	account, ok, err := repo.GetByUsername(context.Background(), "acme1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), account.ID)
}

func TestSheetAccountRepository_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo, _ := newSheetAccounts()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]int64, 10)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := repo.Create(ctx, &models.Account{Username: fmt.Sprintf("u%d", i)})
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := map[int64]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestSheetAccountRepository_SetTokensOnlyTouchesTarget(t *testing.T) {
	repo, values := newSheetAccounts()
	values.sheets["customers"] = [][]interface{}{
		header(models.AccountColumns),
		{"1", "X", "x", "pw", "ig-x", "fb-x"},
		{"2", "Y", "y", "pw", "ig-y", "fb-y"},
	}
	ctx := context.Background()

	err := repo.SetTokens(ctx, 1, map[models.Platform]string{
		models.PlatformFacebook:  "new-fb",
		models.PlatformInstagram: models.LinkedViaFacebook,
	})
	require.NoError(t, err)

	x, _, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "new-fb", x.FBToken)
	assert.Equal(t, models.LinkedViaFacebook, x.IGToken)

	y, _, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "ig-y", y.IGToken)
	assert.Equal(t, "fb-y", y.FBToken)
}

func TestSheetAccountRepository_SetTokensUnknownID(t *testing.T) {
	repo, values := newSheetAccounts()
	values.sheets["customers"] = [][]interface{}{header(models.AccountColumns)}

	err := repo.SetTokens(context.Background(), 9, map[models.Platform]string{models.PlatformInstagram: "t"})
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Zero(t, values.writes)
}

func TestSheetAccountRepository_MalformedID(t *testing.T) {
	repo, values := newSheetAccounts()
	values.sheets["customers"] = [][]interface{}{
		header(models.AccountColumns),
		{"one", "X", "x"},
	}

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrMalformedRow)
}
