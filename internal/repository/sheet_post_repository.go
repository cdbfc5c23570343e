package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/maheshrc27/agency-cockpit/internal/models"
)

type sheetPostRepository struct {
	store *SheetStore
	sheet string
}

func NewSheetPostRepository(store *SheetStore, sheet string) PostRepository {
	return &sheetPostRepository{store: store, sheet: sheet}
}

func (r *sheetPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	t, err := r.store.Read(ctx, r.sheet, models.PostColumns)
	if err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, len(t.Rows))
	for _, row := range t.Rows {
		post, err := postFromRow(row)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *sheetPostRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*models.Post, error) {
	posts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var own []*models.Post
	for _, p := range posts {
		if p.CustomerID == customerID {
			own = append(own, p)
		}
	}
	return own, nil
}

func (r *sheetPostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	var id int64
	err := r.store.Mutate(ctx, r.sheet, models.PostColumns, func(t *Table) error {
		ids, err := t.ids()
		if err != nil {
			return err
		}
		id = NextID(ids)

		created := *post
		created.ID = id
		t.Rows = append(t.Rows, postToRow(&created))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func postFromRow(row []string) (*models.Post, error) {
	id, err := parseID(row[0])
	if err != nil {
		return nil, err
	}
	customerID, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: customer_id %q", ErrMalformedRow, row[1])
	}
	return &models.Post{
		ID:         id,
		CustomerID: customerID,
		Caption:    row[2],
		MediaName:  row[3],
		Status:     row[4],
		Date:       row[5],
	}, nil
}

func postToRow(p *models.Post) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		strconv.FormatInt(p.CustomerID, 10),
		p.Caption,
		p.MediaName,
		p.Status,
		p.Date,
	}
}
