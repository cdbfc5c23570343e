package repository

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/maheshrc27/agency-cockpit/internal/models"
)

const postsTable = "posts"

type postRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewPostRepository(db *sql.DB, driver string) PostRepository {
	return &postRepository{db: db, sb: statementBuilder(driver)}
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	return r.list(ctx, r.sb.Select(models.PostColumns...).From(postsTable).OrderBy("id"))
}

func (r *postRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*models.Post, error) {
	return r.list(ctx, r.sb.Select(models.PostColumns...).From(postsTable).Where(sq.Eq{"customer_id": customerID}).OrderBy("id"))
}

func (r *postRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]*models.Post, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var (
			post                             models.Post
			customerID                       sql.NullInt64
			caption, mediaName, status, date sql.NullString
		)
		if err := rows.Scan(&post.ID, &customerID, &caption, &mediaName, &status, &date); err != nil {
			return nil, err
		}
		post.CustomerID = customerID.Int64
		post.Caption = caption.String
		post.MediaName = mediaName.String
		post.Status = status.String
		post.Date = date.String
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query, args, err := r.sb.Insert(postsTable).
		Columns("customer_id", "caption", "media_name", "status", "date").
		Values(post.CustomerID, post.Caption, post.MediaName, post.Status, post.Date).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, ErrBadQuery
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}
