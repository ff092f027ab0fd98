package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trinitymugbe/localmart-backend/pkg/db/models"
	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

type fakeRepository struct {
	listCategoriesFn    func(ctx context.Context) ([]models.Category, error)
	findCategoryFn      func(ctx context.Context, slug string) (*models.Category, error)
	listProductsFn      func(ctx context.Context) ([]models.Product, error)
	listByCategoryFn    func(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
	listFeaturedFn      func(ctx context.Context, limit int) ([]models.Product, error)
	listNewFn           func(ctx context.Context, limit int) ([]models.Product, error)
	searchFn            func(ctx context.Context, query string) ([]models.Product, error)
	findProductBySlugFn func(ctx context.Context, slug string) (*models.Product, error)
}

func (f *fakeRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.listCategoriesFn != nil {
		return f.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if f.findCategoryFn != nil {
		return f.findCategoryFn(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return nil
}

func (f *fakeRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	if f.listProductsFn != nil {
		return f.listProductsFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	if f.listByCategoryFn != nil {
		return f.listByCategoryFn(ctx, categoryID)
	}
	return nil, nil
}

func (f *fakeRepository) ListFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if f.listFeaturedFn != nil {
		return f.listFeaturedFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeRepository) ListNewProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if f.listNewFn != nil {
		return f.listNewFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeRepository) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, query)
	}
	return nil, nil
}

func (f *fakeRepository) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if f.findProductBySlugFn != nil {
		return f.findProductBySlugFn(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return nil
}

func newServiceWithRepo(repo Repository) Service {
	svc, _ := NewService(repo)
	return svc
}

func TestServiceGetCategoryBySlugNotFound(t *testing.T) {
	svc := newServiceWithRepo(&fakeRepository{})

	_, err := svc.GetCategoryBySlug(context.Background(), "missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceGetCategoryBySlugRequiresSlug(t *testing.T) {
	svc := newServiceWithRepo(&fakeRepository{})

	_, err := svc.GetCategoryBySlug(context.Background(), "   ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceSearchRequiresQuery(t *testing.T) {
	svc := newServiceWithRepo(&fakeRepository{})

	_, err := svc.SearchProducts(context.Background(), "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceListProductsByCategoryRequiresID(t *testing.T) {
	svc := newServiceWithRepo(&fakeRepository{})

	_, err := svc.ListProductsByCategory(context.Background(), uuid.Nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceMapsProductDTO(t *testing.T) {
	discount := 80.0
	product := models.Product{
		ID:            uuid.New(),
		Name:          "Storage Box",
		Slug:          "storage-box",
		Description:   "Stackable box",
		Price:         100,
		DiscountPrice: &discount,
		CategoryID:    uuid.New(),
		InStock:       true,
		StockLevel:    "In Stock",
		SetPieces:     2,
		UnitType:      "set",
	}
	repo := &fakeRepository{
		listProductsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{product}, nil
		},
	}
	svc := newServiceWithRepo(repo)

	dtos, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected one product, got %d", len(dtos))
	}
	got := dtos[0]
	if got.ID != product.ID || got.SetPieces != 2 || got.DiscountPrice == nil || *got.DiscountPrice != 80 {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestServiceWrapsRepositoryFailures(t *testing.T) {
	repo := &fakeRepository{
		listProductsFn: func(ctx context.Context) ([]models.Product, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newServiceWithRepo(repo)

	_, err := svc.ListProducts(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
