package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
)

type PostService interface {
	Schedule(ctx context.Context, in *transfer.PostCreation) (*models.Post, error)
	List(ctx context.Context) ([]*transfer.PostListing, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*transfer.PostListing, error)
	Dashboard(ctx context.Context) (*transfer.Dashboard, error)
}

type postService struct {
	p      repository.PostRepository
	a      repository.AccountRepository
	status string
}

// NewPostService schedules posts with the given status sentinel:
// models.PostStatusPlanned, or models.PostStatusReady when an external
// automation consumes the store.
func NewPostService(p repository.PostRepository, a repository.AccountRepository, status string) PostService {
	return &postService{p: p, a: a, status: status}
}

// Schedule stores one post. The customer id is not checked against the
// account table and the date is kept as given.
func (s *postService) Schedule(ctx context.Context, in *transfer.PostCreation) (*models.Post, error) {
	if in.Incomplete() {
		return nil, ErrMissingFields
	}

	date := strings.TrimSpace(in.Date)
	if t := strings.TrimSpace(in.Time); t != "" {
		date = date + " " + t
	}

	post := &models.Post{
		CustomerID: in.CustomerID,
		Caption:    in.Caption,
		MediaName:  in.MediaName,
		Status:     s.status,
		Date:       date,
	}

	id, err := s.p.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id

	return post, nil
}

func (s *postService) List(ctx context.Context) ([]*transfer.PostListing, error) {
	posts, err := s.p.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withCompanyNames(ctx, posts)
}

func (s *postService) ListByCustomer(ctx context.Context, customerID int64) ([]*transfer.PostListing, error) {
	posts, err := s.p.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.withCompanyNames(ctx, posts)
}

func (s *postService) Dashboard(ctx context.Context) (*transfer.Dashboard, error) {
	accounts, err := s.a.List(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.p.List(ctx)
	if err != nil {
		return nil, err
	}

	return &transfer.Dashboard{
		Customers: len(accounts),
		Posts:     len(posts),
		Status:    "online",
	}, nil
}

func (s *postService) withCompanyNames(ctx context.Context, posts []*models.Post) ([]*transfer.PostListing, error) {
	accounts, err := s.a.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.CompanyName
	}

	listing := make([]*transfer.PostListing, 0, len(posts))
	for _, p := range posts {
		listing = append(listing, &transfer.PostListing{
			ID:          p.ID,
			CustomerID:  p.CustomerID,
			CompanyName: names[p.CustomerID],
			Caption:     p.Caption,
			MediaName:   p.MediaName,
			Status:      p.Status,
			Date:        p.Date,
		})
	}
	return listing, nil
}
