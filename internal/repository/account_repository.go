package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/maheshrc27/agency-cockpit/internal/models"
)

const customersTable = "customers"

type accountRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewAccountRepository returns the relational account store. driver selects
// the placeholder dialect ("sqlite" or "postgres").
func NewAccountRepository(db *sql.DB, driver string) AccountRepository {
	return &accountRepository{db: db, sb: statementBuilder(driver)}
}

func (r *accountRepository) List(ctx context.Context) ([]*models.Account, error) {
	query, args, err := r.sb.Select(models.AccountColumns...).From(customersTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*models.Account, bool, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, bool, error) {
	return r.getOne(ctx, usernameEquals(username))
}

// usernameEquals matches on the trimmed column so rows written with stray
// whitespace still collide and still log in.
func usernameEquals(username string) sq.Sqlizer {
	return sq.Expr("TRIM(username) = ?", strings.TrimSpace(username))
}

func (r *accountRepository) getOne(ctx context.Context, where sq.Sqlizer) (*models.Account, bool, error) {
	query, args, err := r.sb.Select(models.AccountColumns...).From(customersTable).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, false, ErrBadQuery
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return account, true, nil
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query, args, err := r.sb.Select("COUNT(*)").From(customersTable).Where(usernameEquals(account.Username)).ToSql()
	if err != nil {
		return 0, ErrBadQuery
	}
	var existing int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&existing); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	if existing > 0 {
		return 0, ErrDuplicateUsername
	}

	query, args, err = r.sb.Insert(customersTable).
		Columns("company_name", "username", "password", "ig_token", "fb_token").
		Values(account.CompanyName, account.Username, account.Password, account.IGToken, account.FBToken).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, ErrBadQuery
	}

	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		slog.Info(err.Error())
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *accountRepository) SetTokens(ctx context.Context, id int64, tokens map[models.Platform]string) error {
	update := r.sb.Update(customersTable).Where(sq.Eq{"id": id})
	for _, p := range tokenPlatforms {
		if token, ok := tokens[p]; ok {
			update = update.Set(tokenColumn(p), token)
		}
	}

	query, args, err := update.ToSql()
	if err != nil {
		return ErrBadQuery
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAccountNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount tolerates NULL text columns left by older databases.
func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		account                                       models.Account
		company, username, password, igToken, fbToken sql.NullString
	)
	if err := row.Scan(&account.ID, &company, &username, &password, &igToken, &fbToken); err != nil {
		return nil, err
	}
	account.CompanyName = company.String
	account.Username = username.String
	account.Password = password.String
	account.IGToken = igToken.String
	account.FBToken = fbToken.String
	return &account, nil
}
