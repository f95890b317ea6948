package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/model"
)

func TestLeadRepoNewestFirst(t *testing.T) {
	repo := NewLeadRepo(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	first := model.Lead{Name: "Ann", Email: "ann@example.com", BaseModel: model.BaseModel{CreatedAt: now.Add(-time.Minute)}}
	second := model.Lead{Name: "Bo", Email: "bo@example.com", Phone: "0912", BaseModel: model.BaseModel{CreatedAt: now}}
	require.NoError(t, repo.Create(ctx, &first))
	require.NoError(t, repo.Create(ctx, &second))

	leads, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, second.ID, leads[0].ID)
	assert.Equal(t, "0912", leads[0].Phone)
	assert.Equal(t, first.ID, leads[1].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestOrderRepoRoundTripAndSummary(t *testing.T) {
	repo := NewOrderRepo(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	old := model.Order{
		BaseModel: model.BaseModel{CreatedAt: now.Add(-48 * time.Hour)},
		Items:     []model.OrderItem{{ProductID: "a", Quantity: 1}},
		Total:     100,
	}
	recent := model.Order{
		BaseModel: model.BaseModel{CreatedAt: now},
		Items:     []model.OrderItem{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}},
		Total:     2500,
	}
	require.NoError(t, repo.Create(ctx, &old))
	require.NoError(t, repo.Create(ctx, &recent))

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, recent.ID, orders[0].ID)
	assert.Equal(t, []model.OrderItem{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}}, []model.OrderItem(orders[0].Items))

	since, err := repo.FindSince(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, since, 1)
	assert.Equal(t, recent.ID, since[0].ID)

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, int64(2600), summary.TotalRevenue)
}
