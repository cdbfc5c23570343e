package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/maheshrc27/agency-cockpit/internal/models"
)

type sheetAccountRepository struct {
	store *SheetStore
	sheet string
}

func NewSheetAccountRepository(store *SheetStore, sheet string) AccountRepository {
	return &sheetAccountRepository{store: store, sheet: sheet}
}

func (r *sheetAccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	t, err := r.store.Read(ctx, r.sheet, models.AccountColumns)
	if err != nil {
		return nil, err
	}

	accounts := make([]*models.Account, 0, len(t.Rows))
	for _, row := range t.Rows {
		account, err := accountFromRow(row)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *sheetAccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, bool, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, true, nil
		}
	}
	return nil, false, nil
}

func (r *sheetAccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, bool, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, a := range accounts {
		if strings.TrimSpace(a.Username) == username {
			return a, true, nil
		}
	}
	return nil, false, nil
}

func (r *sheetAccountRepository) Create(ctx context.Context, account *models.Account) (int64, error) {
	var id int64
	err := r.store.Mutate(ctx, r.sheet, models.AccountColumns, func(t *Table) error {
		usernameCol := t.column("username")
		for _, row := range t.Rows {
			if strings.TrimSpace(row[usernameCol]) == account.Username {
				return ErrDuplicateUsername
			}
		}

		ids, err := t.ids()
		if err != nil {
			return err
		}
		id = NextID(ids)

		created := *account
		created.ID = id
		t.Rows = append(t.Rows, accountToRow(&created))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *sheetAccountRepository) SetTokens(ctx context.Context, id int64, tokens map[models.Platform]string) error {
	return r.store.Mutate(ctx, r.sheet, models.AccountColumns, func(t *Table) error {
		matched := 0
		for _, row := range t.Rows {
			rowID, err := parseID(row[0])
			if err != nil {
				return err
			}
			if rowID != id {
				continue
			}
			for _, p := range tokenPlatforms {
				if token, ok := tokens[p]; ok {
					row[t.column(tokenColumn(p))] = token
				}
			}
			matched++
		}
		if matched == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}

func accountFromRow(row []string) (*models.Account, error) {
	id, err := parseID(row[0])
	if err != nil {
		return nil, err
	}
	return &models.Account{
		ID:          id,
		CompanyName: row[1],
		Username:    row[2],
		Password:    row[3],
		IGToken:     row[4],
		FBToken:     row[5],
	}, nil
}

func accountToRow(a *models.Account) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.CompanyName,
		a.Username,
		a.Password,
		a.IGToken,
		a.FBToken,
	}
}
