package order

import (
	"context"
	"testing"
	"time"

	"alienic/internal/database"
	"alienic/internal/domain"
	"alienic/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, custom bool) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Slug:        name,
		Name:        name,
		IsAvailable: true,
		IsCustom:    custom,
		Status:      domain.ProductActive,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestCreate_WithLineItems(t *testing.T) {
	svc, db := setupService(t)

	p := seedProduct(t, db, "obsidian-band", false)

	o, err := svc.Create(context.Background(), CreateRequest{
		CustomerName: "Jordan",
		TotalAmount:  90,
		Items:        []LineItem{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, o.Status)
	require.Len(t, o.Products, 1)
	assert.Equal(t, p.ID, o.Products[0].ProductID)
}

func TestCreate_UnknownProduct(t *testing.T) {
	svc, db := setupService(t)

	_, err := svc.Create(context.Background(), CreateRequest{
		CustomerName: "Jordan",
		Items:        []LineItem{{ProductID: "missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrUnknownProduct)

	// The whole transaction rolled back, no half-written order.
	var count int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdate_DeliveredArchivesNonCustomPieces(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	regular := seedProduct(t, db, "void-chain", false)
	custom := seedProduct(t, db, "commissioned-relic", true)

	o, err := svc.Create(ctx, CreateRequest{
		CustomerName: "Mara",
		Items: []LineItem{
			{ProductID: regular.ID, Quantity: 1},
			{ProductID: custom.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	delivered := string(domain.OrderDelivered)
	updated, err := svc.Update(ctx, o.ID, UpdateRequest{Status: &delivered})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDelivered, updated.Status)
	require.NotNil(t, updated.ActualDelivery)

	var storedRegular, storedCustom domain.Product
	require.NoError(t, db.First(&storedRegular, "id = ?", regular.ID).Error)
	require.NoError(t, db.First(&storedCustom, "id = ?", custom.ID).Error)

	assert.Equal(t, domain.ProductArchived, storedRegular.Status)
	assert.False(t, storedRegular.IsAvailable)

	// Custom commissions never sat in the shop, they are left alone.
	assert.Equal(t, domain.ProductActive, storedCustom.Status)
	assert.True(t, storedCustom.IsAvailable)
}

func TestUpdate_DeliveredTwiceKeepsFirstTimestamp(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "the-beacon", false)
	o, err := svc.Create(ctx, CreateRequest{
		CustomerName: "Kai",
		Items:        []LineItem{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	delivered := string(domain.OrderDelivered)
	first, err := svc.Update(ctx, o.ID, UpdateRequest{Status: &delivered})
	require.NoError(t, err)
	require.NotNil(t, first.ActualDelivery)

	second, err := svc.Update(ctx, o.ID, UpdateRequest{Status: &delivered})
	require.NoError(t, err)
	require.NotNil(t, second.ActualDelivery)
	assert.WithinDuration(t, *first.ActualDelivery, *second.ActualDelivery, time.Second)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc, _ := setupService(t)

	bogus := "Bogus"
	_, err := svc.Update(context.Background(), "any", UpdateRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_FilterByStatus(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "eclipse-pendant", false)
	for _, name := range []string{"A", "B"} {
		_, err := svc.Create(ctx, CreateRequest{
			CustomerName: name,
			Items:        []LineItem{{ProductID: p.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	pending, err := svc.List(ctx, string(domain.OrderPending))
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	shipped, err := svc.List(ctx, string(domain.OrderShipped))
	require.NoError(t, err)
	assert.Empty(t, shipped)

	_, err = svc.List(ctx, "Bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDelete_RemovesLineItems(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "chain-of-whispers", false)
	o, err := svc.Create(ctx, CreateRequest{
		CustomerName: "Sol",
		Items:        []LineItem{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, o.ID))

	var lines int64
	require.NoError(t, db.Model(&domain.OrderProduct{}).Count(&lines).Error)
	assert.Zero(t, lines)
}
