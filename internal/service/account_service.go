package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
	"github.com/maheshrc27/agency-cockpit/pkg/utils"
)

type AccountService interface {
	Create(ctx context.Context, in *transfer.AccountCreation) (*models.Account, error)
	List(ctx context.Context) ([]*transfer.AccountListing, error)
	Authenticate(ctx context.Context, username, password string) (*models.Account, error)
	Overview(ctx context.Context, id int64) (*transfer.ClientOverview, error)
	UpdateToken(ctx context.Context, id int64, platform models.Platform, token string) error
	Disconnect(ctx context.Context, id int64, platform models.Platform) error
}

type accountService struct {
	a repository.AccountRepository
}

func NewAccountService(a repository.AccountRepository) AccountService {
	return &accountService{a: a}
}

func (s *accountService) Create(ctx context.Context, in *transfer.AccountCreation) (*models.Account, error) {
	company := strings.TrimSpace(in.CompanyName)
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)

	if anyBlank(company, username, password) {
		return nil, ErrMissingFields
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		CompanyName: company,
		Username:    username,
		Password:    hash,
	}

	id, err := s.a.Create(ctx, account)
	if err != nil {
		slog.Info(err.Error(), "username", username)
		return nil, err
	}
	account.ID = id

	return account, nil
}

func (s *accountService) List(ctx context.Context) ([]*transfer.AccountListing, error) {
	accounts, err := s.a.List(ctx)
	if err != nil {
		return nil, err
	}

	listing := make([]*transfer.AccountListing, 0, len(accounts))
	for _, a := range accounts {
		listing = append(listing, &transfer.AccountListing{
			ID:          a.ID,
			CompanyName: a.CompanyName,
			Username:    a.Username,
		})
	}
	return listing, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if anyBlank(username, password) {
		return nil, ErrInvalidCredentials
	}

	account, isExist, err := s.a.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(strings.TrimSpace(account.Password), password) {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (s *accountService) Overview(ctx context.Context, id int64) (*transfer.ClientOverview, error) {
	account, isExist, err := s.a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isExist {
		return nil, repository.ErrAccountNotFound
	}

	return &transfer.ClientOverview{
		ID:                 account.ID,
		CompanyName:        account.CompanyName,
		InstagramConnected: account.IGToken != "",
		FacebookConnected:  account.FBToken != "",
	}, nil
}

// UpdateToken sets one platform token of one account. An empty token
// disconnects the platform.
func (s *accountService) UpdateToken(ctx context.Context, id int64, platform models.Platform, token string) error {
	if !platform.Valid() {
		return ErrUnknownPlatform
	}

	return s.a.SetTokens(ctx, id, map[models.Platform]string{
		platform: strings.TrimSpace(token),
	})
}

// Disconnect clears one platform token. Dropping Facebook also drops an
// Instagram link that was only derived from the Facebook login.
func (s *accountService) Disconnect(ctx context.Context, id int64, platform models.Platform) error {
	if !platform.Valid() {
		return ErrUnknownPlatform
	}

	tokens := map[models.Platform]string{platform: ""}
	if platform == models.PlatformFacebook {
		account, isExist, err := s.a.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !isExist {
			return repository.ErrAccountNotFound
		}
		if account.IGToken == models.LinkedViaFacebook {
			tokens[models.PlatformInstagram] = ""
		}
	}

	return s.a.SetTokens(ctx, id, tokens)
}
