package services

import (
	"context"

	"apparel-shop/models"
	"apparel-shop/repositories"

	"go.mongodb.org/mongo-driver/bson"
)

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) GetAllProducts(ctx context.Context, category string, limit int64) ([]models.Product, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	return s.productRepo.List(ctx, category, limit)
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Images:      req.Images,
		Colors:      req.Colors,
		Sizes:       req.Sizes,
		InStock:     inStock,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Description != "" {
		update["description"] = req.Description
	}
	if req.Category != "" {
		update["category"] = req.Category
	}
	if req.Price > 0 {
		update["price"] = req.Price
	}
	if req.Image != "" {
		update["image"] = req.Image
	}
	if req.Images != nil {
		update["images"] = req.Images
	}
	if req.Colors != nil {
		update["colors"] = req.Colors
	}
	if req.Sizes != nil {
		update["sizes"] = req.Sizes
	}
	if req.InStock != nil {
		update["inStock"] = *req.InStock
	}

	return s.productRepo.Update(ctx, id, update)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
