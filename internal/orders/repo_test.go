package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	"github.com/trinitymugbe/localmart-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL,
  image_url TEXT NOT NULL,
  price REAL NOT NULL,
  discount_price REAL,
  category_id TEXT NOT NULL,
  in_stock INTEGER NOT NULL DEFAULT 1,
  stock_level TEXT NOT NULL DEFAULT 'In Stock',
  is_new INTEGER NOT NULL DEFAULT 0,
  set_pieces INTEGER NOT NULL DEFAULT 1,
  unit_type TEXT NOT NULL DEFAULT 'piece',
  created_at DATETIME,
  updated_at DATETIME
);`
	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  total_amount REAL NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price REAL NOT NULL
);`
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(orderItems).Error)
	require.NoError(t, db.Exec(`DELETE FROM order_items`).Error)
	require.NoError(t, db.Exec(`DELETE FROM orders`).Error)
	require.NoError(t, db.Exec(`DELETE FROM products`).Error)
	return db
}

func mustCreateOrderProduct(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Name:        "Glass Jar",
		Slug:        "jar-" + uuid.NewString()[:8],
		Description: "storage jar",
		ImageURL:    "https://cdn.example.com/jar.jpg",
		Price:       25,
		CategoryID:  uuid.New(),
		InStock:     true,
		StockLevel:  "In Stock",
		SetPieces:   1,
		UnitType:    "piece",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func mustCreateOrder(t *testing.T, db *gorm.DB, repo Repository, status enums.OrderStatus) *models.Order {
	t.Helper()
	product := mustCreateOrderProduct(t, db)
	orderID := uuid.New()
	order := &models.Order{
		ID:            orderID,
		CustomerName:  "Ada Buyer",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "555-0100",
		TotalAmount:   29.5,
		Status:        status,
		Items: []models.OrderItem{
			{
				ID:        uuid.New(),
				OrderID:   orderID,
				ProductID: product.ID,
				Quantity:  1,
				Price:     25,
			},
		},
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestRepositoryCreatePersistsOrderWithItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	created := mustCreateOrder(t, db, repo, enums.OrderStatusPending)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Buyer", found.CustomerName)
	require.Len(t, found.Items, 1)
	require.NotNil(t, found.Items[0].Product)
	assert.Equal(t, "Glass Jar", found.Items[0].Product.Name)
}

func TestRepositoryFindMissingOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryUpdateStatusGuardsCurrentValue(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := mustCreateOrder(t, db, repo, enums.OrderStatusPending)

	applied, err := repo.UpdateStatus(ctx, order.ID, enums.OrderStatusPending, enums.OrderStatusProcessing)
	require.NoError(t, err)
	assert.True(t, applied)

	// stale expected status does not match anymore
	applied, err = repo.UpdateStatus(ctx, order.ID, enums.OrderStatusPending, enums.OrderStatusCancelled)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestRepositoryDeleteRemovesItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := mustCreateOrder(t, db, repo, enums.OrderStatusPending)

	found, err := repo.Delete(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)

	found, err = repo.Delete(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepositoryListNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mustCreateOrder(t, db, repo, enums.OrderStatusPending)
	mustCreateOrder(t, db, repo, enums.OrderStatusShipped)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.NotEmpty(t, order.Items)
	}
}
