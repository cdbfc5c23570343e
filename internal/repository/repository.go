package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/maheshrc27/agency-cockpit/internal/models"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrTableMissing      = errors.New("table missing")
	ErrSchemaMismatch    = errors.New("table header does not match schema")
	ErrMalformedRow      = errors.New("malformed row")
	ErrBadQuery          = errors.New("bad query")
)

type AccountRepository interface {
	List(ctx context.Context) ([]*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, bool, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, bool, error)
	Create(ctx context.Context, account *models.Account) (int64, error)
	SetTokens(ctx context.Context, id int64, tokens map[models.Platform]string) error
}

type PostRepository interface {
	List(ctx context.Context) ([]*models.Post, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]*models.Post, error)
	Create(ctx context.Context, post *models.Post) (int64, error)
}

// NextID returns max(ids)+1, or 1 for an empty table. Gaps are never reused.
func NextID(ids []int64) int64 {
	var highest int64
	for _, id := range ids {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}

// tokenPlatforms fixes the order token columns are written in.
var tokenPlatforms = []models.Platform{models.PlatformInstagram, models.PlatformFacebook}

func tokenColumn(p models.Platform) string {
	return string(p) + "_token"
}

func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == "postgres" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
