package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	config "github.com/maheshrc27/agency-cockpit/configs"
	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
	"github.com/maheshrc27/agency-cockpit/pkg/utils"
	"golang.org/x/oauth2"
)

const (
	FacebookAuthURL  = "https://www.facebook.com/dialog/oauth"
	FacebookTokenURL = "https://graph.facebook.com/oauth/access_token"

	stateTTL = 10 * time.Minute
	codeTTL  = 24 * time.Hour
)

var FacebookScopes = []string{"pages_show_list", "pages_read_engagement", "pages_manage_posts"}

func FacebookOAuthConfig(cfg config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.Facebook.ClientID,
		ClientSecret: cfg.Facebook.ClientSecret,
		RedirectURL:  cfg.Facebook.RedirectURI,
		Scopes:       FacebookScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   FacebookAuthURL,
			TokenURL:  FacebookTokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

type PlatformService interface {
	GetAuthURL(ctx context.Context, accountID int64) (string, error)
	Callback(ctx context.Context, code, state string) (int64, error)
}

type platformService struct {
	secretKey string
	oauth     *oauth2.Config
	a         repository.AccountRepository
	codes     repository.OAuthCodeRepository
}

func NewPlatformService(secretKey string, oauth *oauth2.Config, a repository.AccountRepository, codes repository.OAuthCodeRepository) PlatformService {
	return &platformService{
		secretKey: secretKey,
		oauth:     oauth,
		a:         a,
		codes:     codes,
	}
}

// GetAuthURL builds the Facebook dialog URL. The state names the account
// that started the flow and expires after stateTTL.
func (s *platformService) GetAuthURL(ctx context.Context, accountID int64) (string, error) {
	state, err := utils.GenerateToken(s.secretKey, strconv.FormatInt(accountID, 10), transfer.TokenKindState, stateTTL)
	if err != nil {
		return "", err
	}
	return s.oauth.AuthCodeURL(state), nil
}

// Callback exchanges code once and stores the resulting access token as the
// account's Facebook token. A failed exchange is not retried; the code is
// spent either way.
func (s *platformService) Callback(ctx context.Context, code, state string) (int64, error) {
	if code == "" {
		return 0, ErrMissingFields
	}

	claims, err := utils.ValidateToken(s.secretKey, state, transfer.TokenKindState)
	if err != nil {
		return 0, ErrInvalidState
	}
	accountID, err := strconv.ParseInt(claims.AccountID, 10, 64)
	if err != nil {
		return 0, ErrInvalidState
	}

	first, err := s.codes.Claim(ctx, code, codeTTL)
	if err != nil {
		return 0, fmt.Errorf("claim code: %w", err)
	}
	if !first {
		slog.Info("authorization code replayed", "account_id", accountID)
		return 0, ErrCodeAlreadyUsed
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error(), "account_id", accountID)
		return 0, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}

	err = s.a.SetTokens(ctx, accountID, map[models.Platform]string{
		models.PlatformFacebook:  token.AccessToken,
		models.PlatformInstagram: models.LinkedViaFacebook,
	})
	if err != nil {
		return 0, err
	}

	return accountID, nil
}
