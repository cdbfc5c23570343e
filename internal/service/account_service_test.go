package service

import (
	"context"
	"strings"
	"testing"

	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newRepositories(t)
	s := NewAccountService(accounts)

	acc, err := s.Create(ctx, &transfer.AccountCreation{CompanyName: " Acme ", Username: " acme ", Password: " s3cret "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)
	assert.Equal(t, "Acme", acc.CompanyName)
	assert.Equal(t, "acme", acc.Username)
	assert.True(t, strings.HasPrefix(acc.Password, "$2"), "password must be hashed")

	_, err = s.Create(ctx, &transfer.AccountCreation{CompanyName: "Other", Username: "acme", Password: "x"})
	require.ErrorIs(t, err, repository.ErrDuplicateUsername)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].CompanyName)
}

func TestAccountService_CreateMissingFields(t *testing.T) {
	accounts, _ := newRepositories(t)
	s := NewAccountService(accounts)

	cases := []transfer.AccountCreation{
		{Username: "u", Password: "p"},
		{CompanyName: "c", Password: "p"},
		{CompanyName: "c", Username: "u", Password: "   "},
	}
	for _, in := range cases {
		_, err := s.Create(context.Background(), &in)
		assert.ErrorIs(t, err, ErrMissingFields)
	}

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAccountService_Authenticate(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newRepositories(t)
	s := NewAccountService(accounts)

	created, err := s.Create(ctx, &transfer.AccountCreation{CompanyName: "Acme", Username: "acme", Password: "s3cret"})
	require.NoError(t, err)

	acc, err := s.Authenticate(ctx, "  acme ", " s3cret  ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, acc.ID)

	_, err = s.Authenticate(ctx, "acme", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_AuthenticateLegacyPlainPassword(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newRepositories(t)
	_, err := accounts.Create(ctx, &models.Account{CompanyName: "Old", Username: "old", Password: "plain"})
	require.NoError(t, err)

	s := NewAccountService(accounts)
	_, err = s.Authenticate(ctx, "old", "plain")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, "old", "plai")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_UpdateTokenAndOverview(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newRepositories(t)
	s := NewAccountService(accounts)

	acc, err := s.Create(ctx, &transfer.AccountCreation{CompanyName: "Acme", Username: "acme", Password: "pw"})
	require.NoError(t, err)

	overview, err := s.Overview(ctx, acc.ID)
	require.NoError(t, err)
	assert.False(t, overview.InstagramConnected)
	assert.False(t, overview.FacebookConnected)

	require.NoError(t, s.UpdateToken(ctx, acc.ID, models.PlatformInstagram, "ig-123"))

	overview, err = s.Overview(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, overview.InstagramConnected)
	assert.False(t, overview.FacebookConnected)

	require.NoError(t, s.UpdateToken(ctx, acc.ID, models.PlatformInstagram, ""))
	overview, err = s.Overview(ctx, acc.ID)
	require.NoError(t, err)
	assert.False(t, overview.InstagramConnected)

	assert.ErrorIs(t, s.UpdateToken(ctx, acc.ID, models.Platform("tt"), "x"), ErrUnknownPlatform)
	assert.ErrorIs(t, s.UpdateToken(ctx, 99, models.PlatformFacebook, "x"), repository.ErrAccountNotFound)

	_, err = s.Overview(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountService_Disconnect(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newRepositories(t)
	s := NewAccountService(accounts)

	linked, err := accounts.Create(ctx, &models.Account{Username: "linked", IGToken: models.LinkedViaFacebook, FBToken: "fb"})
	require.NoError(t, err)
	manual, err := accounts.Create(ctx, &models.Account{Username: "manual", IGToken: "ig-own", FBToken: "fb"})
	require.NoError(t, err)

	require.NoError(t, s.Disconnect(ctx, linked, models.PlatformFacebook))
	overview, err := s.Overview(ctx, linked)
	require.NoError(t, err)
	assert.False(t, overview.FacebookConnected)
	assert.False(t, overview.InstagramConnected)

	require.NoError(t, s.Disconnect(ctx, manual, models.PlatformFacebook))
	overview, err = s.Overview(ctx, manual)
	require.NoError(t, err)
	assert.False(t, overview.FacebookConnected)
	assert.True(t, overview.InstagramConnected)

	assert.ErrorIs(t, s.Disconnect(ctx, manual, models.Platform("tt")), ErrUnknownPlatform)
	assert.ErrorIs(t, s.Disconnect(ctx, 99, models.PlatformFacebook), repository.ErrAccountNotFound)
}
