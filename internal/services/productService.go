package services

import (
	"context"
	"errors"

	"github.com/arzan03/ProductHub/internal/models"
	"github.com/arzan03/ProductHub/internal/storage"
)

type ProductService struct {
	products storage.ProductStore
}

func NewProductService(products storage.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// Create stores a product owned by whatever userId the body names.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		Company:  in.Company,
		UserID:   in.UserID,
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List returns every product, newest first.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.ListByCreatedDesc(ctx)
}

// Get returns ErrProductNotFound for unknown and malformed ids alike.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidID) {
		return nil, ErrProductNotFound
	}
	return product, err
}

// Update overwrites the product's fields and reassigns it to callerID. The
// returned value is what was written, not a re-read of the document.
func (s *ProductService) Update(ctx context.Context, id, callerID string, in models.ProductInput) (models.ProductInput, error) {
	in.UserID = callerID
	if err := s.products.UpdateByID(ctx, id, in); err != nil {
		return models.ProductInput{}, err
	}
	return in, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	deleted, err := s.products.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductService) Search(ctx context.Context, key string) ([]models.Product, error) {
	return s.products.Search(ctx, key)
}
