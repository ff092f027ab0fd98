package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	"github.com/trinitymugbe/localmart-backend/pkg/enums"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  image_url TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
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
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(`DELETE FROM products`).Error)
	require.NoError(t, db.Exec(`DELETE FROM categories`).Error)
	return db
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:       uuid.New(),
		Name:     name,
		Slug:     fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]),
		ImageURL: "https://cdn.example.com/categories/" + name + ".jpg",
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

type productOpts struct {
	discount  *float64
	isNew     bool
	name      string
	stockText enums.StockLevel
}

func mustCreateProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, opts productOpts) *models.Product {
	t.Helper()
	name := opts.name
	if name == "" {
		name = "Kitchen Organizer"
	}
	level := opts.stockText
	if level == "" {
		level = enums.StockLevelInStock
	}
	product := &models.Product{
		ID:            uuid.New(),
		Name:          name,
		Slug:          fmt.Sprintf("p-%s", uuid.NewString()[:8]),
		Description:   "A practical household item",
		ImageURL:      "https://cdn.example.com/products/item.jpg",
		Price:         100,
		DiscountPrice: opts.discount,
		CategoryID:    categoryID,
		InStock:       true,
		StockLevel:    level,
		IsNew:         opts.isNew,
		SetPieces:     1,
		UnitType:      "piece",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRepositoryCategoryLookup(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created := mustCreateCategory(t, db, "kitchen")

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, created.ID, categories[0].ID)

	found, err := repo.FindCategoryBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)

	_, err = repo.FindCategoryBySlug(ctx, "missing-slug")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFeaturedProductsRequireDiscount(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "home")
	discount := 75.0
	featured := mustCreateProduct(t, db, category.ID, productOpts{discount: &discount, name: "Storage Box"})
	mustCreateProduct(t, db, category.ID, productOpts{name: "Full Price Mop"})

	products, err := repo.ListFeaturedProducts(ctx, 8)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, featured.ID, products[0].ID)
}

func TestRepositoryFeaturedProductsCapped(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "decor")
	for i := 0; i < 10; i++ {
		discount := 50.0
		mustCreateProduct(t, db, category.ID, productOpts{discount: &discount, name: fmt.Sprintf("Lamp %d", i)})
	}

	products, err := repo.ListFeaturedProducts(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestRepositoryNewProducts(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "bath")
	fresh := mustCreateProduct(t, db, category.ID, productOpts{isNew: true, name: "Towel Set"})
	mustCreateProduct(t, db, category.ID, productOpts{name: "Old Towel"})

	products, err := repo.ListNewProducts(ctx, 8)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, fresh.ID, products[0].ID)
}

func TestRepositorySearchMatchesNameAndDescription(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "cleaning")
	byName := mustCreateProduct(t, db, category.ID, productOpts{name: "Steel Scrubber"})
	byDescription := mustCreateProduct(t, db, category.ID, productOpts{name: "Sponge Pack"})
	mustCreateProduct(t, db, category.ID, productOpts{name: "Broom"})

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", byDescription.ID).
		Update("description", "A scrubber alternative for dishes").Error)

	products, err := repo.SearchProducts(ctx, "SCRUB")
	require.NoError(t, err)
	require.Len(t, products, 2)
	ids := []uuid.UUID{products[0].ID, products[1].ID}
	assert.Contains(t, ids, byName.ID)
	assert.Contains(t, ids, byDescription.ID)
}

func TestRepositoryProductsByCategory(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	kitchen := mustCreateCategory(t, db, "kitchen")
	garden := mustCreateCategory(t, db, "garden")
	inKitchen := mustCreateProduct(t, db, kitchen.ID, productOpts{name: "Pan"})
	mustCreateProduct(t, db, garden.ID, productOpts{name: "Hose"})

	products, err := repo.ListProductsByCategory(ctx, kitchen.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, inKitchen.ID, products[0].ID)
}

func TestRepositoryFindProductBySlug(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := mustCreateCategory(t, db, "storage")
	created := mustCreateProduct(t, db, category.ID, productOpts{name: "Bin"})

	found, err := repo.FindProductBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindProductBySlug(ctx, "not-a-slug")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
