package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/trinitymugbe/localmart-backend/internal/catalog"
	"github.com/trinitymugbe/localmart-backend/pkg/config"
	"github.com/trinitymugbe/localmart-backend/pkg/db"
	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	"github.com/trinitymugbe/localmart-backend/pkg/enums"
	"github.com/trinitymugbe/localmart-backend/pkg/logger"
)

type seedProduct struct {
	name          string
	slug          string
	description   string
	imageURL      string
	price         float64
	discountPrice *float64
	categorySlug  string
	stockLevel    enums.StockLevel
	isNew         bool
	setPieces     int
	unitType      string
}

func discounted(v float64) *float64 { return &v }

var seedCategories = []models.Category{
	{Name: "Clothing", Slug: "clothing", ImageURL: "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80"},
	{Name: "Tableware", Slug: "tableware", ImageURL: "https://images.unsplash.com/photo-1578749556568-bc2c40e68b61?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
	{Name: "Kitchen", Slug: "kitchen", ImageURL: "https://images.unsplash.com/photo-1565183928294-7063f23ce0f8?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"},
	{Name: "Home Decor", Slug: "home-decor", ImageURL: "https://images.unsplash.com/photo-1567016432779-094069958ea5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80"},
}

var seedProducts = []seedProduct{
	{
		name:          "Blue Linen Shirt",
		slug:          "blue-linen-shirt",
		description:   "Comfortable blue linen shirt perfect for summer days.",
		imageURL:      "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		price:         49.99,
		discountPrice: discounted(29.99),
		categorySlug:  "clothing",
		stockLevel:    enums.StockLevelInStock,
		setPieces:     1,
		unitType:      "piece",
	},
	{
		name:         "Cotton T-Shirt",
		slug:         "cotton-t-shirt",
		description:  "Soft cotton t-shirt available in multiple colors.",
		imageURL:     "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		price:        19.99,
		categorySlug: "clothing",
		stockLevel:   enums.StockLevelInStock,
		isNew:        true,
		setPieces:    1,
		unitType:     "piece",
	},
	{
		name:          "Ceramic Dinner Set",
		slug:          "ceramic-dinner-set",
		description:   "Elegant ceramic dinner set for a family of four.",
		imageURL:      "https://images.unsplash.com/photo-1578749556568-bc2c40e68b61?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		price:         59.99,
		discountPrice: discounted(44.99),
		categorySlug:  "tableware",
		stockLevel:    enums.StockLevelInStock,
		setPieces:     12,
		unitType:      "set",
	},
	{
		name:         "Crystal Glass Set",
		slug:         "crystal-glass-set",
		description:  "Elegant crystal glass set for your special occasions.",
		imageURL:     "https://images.unsplash.com/photo-1589365278144-c9e705f843ba?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		price:        29.99,
		categorySlug: "tableware",
		stockLevel:   enums.StockLevelInStock,
		isNew:        true,
		setPieces:    6,
		unitType:     "set",
	},
	{
		name:          "Ceramic Plate Set",
		slug:          "ceramic-plate-set",
		description:   "Beautiful ceramic plates for everyday use or special occasions.",
		imageURL:      "https://images.pexels.com/photos/6270663/pexels-photo-6270663.jpeg?auto=compress&cs=tinysrgb&w=500",
		price:         49.99,
		discountPrice: discounted(34.99),
		categorySlug:  "kitchen",
		stockLevel:    enums.StockLevelLowStock,
		setPieces:     6,
		unitType:      "set",
	},
	{
		name:          "Premium Cooking Pot Set",
		slug:          "premium-cooking-pot-set",
		description:   "High-quality stainless steel cooking pot set for all your kitchen needs.",
		imageURL:      "https://images.pexels.com/photos/932267/pexels-photo-932267.jpeg?auto=compress&cs=tinysrgb&w=500",
		price:         89.99,
		discountPrice: discounted(69.99),
		categorySlug:  "kitchen",
		stockLevel:    enums.StockLevelInStock,
		setPieces:     5,
		unitType:      "set",
	},
	{
		name:         "Ceramic Vase Set",
		slug:         "ceramic-vase-set",
		description:  "Beautiful ceramic vase set for your home decor.",
		imageURL:     "https://images.pexels.com/photos/8989514/pexels-photo-8989514.jpeg?auto=compress&cs=tinysrgb&w=500",
		price:        34.99,
		categorySlug: "home-decor",
		stockLevel:   enums.StockLevelInStock,
		isNew:        true,
		setPieces:    3,
		unitType:     "set",
	},
	{
		name:          "Wall Art Canvas Set",
		slug:          "wall-art-canvas-set",
		description:   "Set of three modern canvas prints for wall decoration.",
		imageURL:      "https://images.pexels.com/photos/1587927/pexels-photo-1587927.jpeg?auto=compress&cs=tinysrgb&w=500",
		price:         79.99,
		discountPrice: discounted(59.99),
		categorySlug:  "home-decor",
		stockLevel:    enums.StockLevelInStock,
		setPieces:     3,
		unitType:      "set",
	},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	repo := catalog.NewRepository(dbClient.DB())

	categoryIDs := map[string]uuid.UUID{}
	for _, category := range seedCategories {
		existing, err := repo.FindCategoryBySlug(ctx, category.Slug)
		if err == nil {
			categoryIDs[category.Slug] = existing.ID
			continue
		}

		category.ID = uuid.New()
		if err := repo.CreateCategory(ctx, &category); err != nil {
			logg.Error(ctx, fmt.Sprintf("failed to seed category %s", category.Slug), err)
			os.Exit(1)
		}
		categoryIDs[category.Slug] = category.ID
	}
	logg.Info(ctx, fmt.Sprintf("seeded %d categories", len(seedCategories)))

	inserted := 0
	for _, seed := range seedProducts {
		if _, err := repo.FindProductBySlug(ctx, seed.slug); err == nil {
			continue
		}

		product := models.Product{
			ID:            uuid.New(),
			Name:          seed.name,
			Slug:          seed.slug,
			Description:   seed.description,
			ImageURL:      seed.imageURL,
			Price:         seed.price,
			DiscountPrice: seed.discountPrice,
			CategoryID:    categoryIDs[seed.categorySlug],
			InStock:       true,
			StockLevel:    seed.stockLevel,
			IsNew:         seed.isNew,
			SetPieces:     seed.setPieces,
			UnitType:      seed.unitType,
		}
		if err := repo.CreateProduct(ctx, &product); err != nil {
			logg.Error(ctx, fmt.Sprintf("failed to seed product %s", seed.slug), err)
			os.Exit(1)
		}
		inserted++
	}
	logg.Info(ctx, fmt.Sprintf("seeded %d products", inserted))
}
