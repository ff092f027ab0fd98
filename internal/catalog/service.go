package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/trinitymugbe/localmart-backend/pkg/errors"
)

// Service exposes read operations for the storefront catalog.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	GetCategoryBySlug(ctx context.Context, slug string) (CategoryDTO, error)
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductDTO, error)
	GetFeaturedProducts(ctx context.Context) ([]ProductDTO, error)
	GetNewProducts(ctx context.Context) ([]ProductDTO, error)
	SearchProducts(ctx context.Context, query string) ([]ProductDTO, error)
	GetProductBySlug(ctx context.Context, slug string) (ProductDTO, error)
}

type service struct {
	repo Repository
}

// NewService wires catalog dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	out := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryToDTO(category))
	}
	return out, nil
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (CategoryDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return CategoryDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "category slug is required")
	}
	category, err := s.repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "category not found")
		}
		return CategoryDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	return categoryToDTO(*category), nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return productsToDTO(products), nil
}

func (s *service) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductDTO, error) {
	if categoryID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id is required")
	}
	products, err := s.repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products by category")
	}
	return productsToDTO(products), nil
}

func (s *service) GetFeaturedProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListFeaturedProducts(ctx, highlightLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list featured products")
	}
	return productsToDTO(products), nil
}

func (s *service) GetNewProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListNewProducts(ctx, highlightLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list new products")
	}
	return productsToDTO(products), nil
}

func (s *service) SearchProducts(ctx context.Context, query string) ([]ProductDTO, error) {
	if strings.TrimSpace(query) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search query is required")
	}
	products, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search products")
	}
	return productsToDTO(products), nil
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (ProductDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ProductDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required")
	}
	product, err := s.repo.FindProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return ProductDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return productToDTO(*product), nil
}
