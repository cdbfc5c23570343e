package repository

import (
	"context"
	"testing"

	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetPostRepository_CreateAndList(t *testing.T) {
	values := newFakeSheetValues()
	repo := NewSheetPostRepository(NewSheetStore(values), "posts")
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.Post{
		CustomerID: 3,
		Caption:    "Hello",
		MediaName:  "img.png",
		Status:     models.PostStatusPlanned,
		Date:       "2024-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = repo.Create(ctx, &models.Post{CustomerID: 4, Caption: "Other", MediaName: "b.jpg", Status: models.PostStatusPlanned, Date: "2024-05-02"})
	require.NoError(t, err)

	own, err := repo.ListByCustomerID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, models.Post{
		ID:         1,
		CustomerID: 3,
		Caption:    "Hello",
		MediaName:  "img.png",
		Status:     models.PostStatusPlanned,
		Date:       "2024-05-01",
	}, *own[0])

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
