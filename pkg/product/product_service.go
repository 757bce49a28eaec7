package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/internal/utils"
	"pawplate/internal/utils/storage"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest, sellerID string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, sellerID string) error
		DeleteProduct(ctx context.Context, id string, sellerID string) error
		GetProducts(ctx context.Context, criteria FilterCriteria) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		GetSellerProducts(ctx context.Context, sellerID string) ([]domain.ProductResponse, error)
		UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest, sellerID string) (string, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest, sellerID string) (domain.ProductResponse, error) {
	sellerUUID, err := uuid.Parse(sellerID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	product := &entities.Product{
		ID:                      uuid.New(),
		SellerID:                sellerUUID,
		Name:                    req.Name,
		Brand:                   req.Brand,
		Description:             req.Description,
		Price:                   req.Price,
		Stock:                   req.Stock,
		Available:               req.Stock > 0,
		ImageURL:                req.ImageURL,
		CaloriesPer100g:         req.CaloriesPer100g,
		ProteinPer100g:          req.ProteinPer100g,
		FatPer100g:              req.FatPer100g,
		DietType:                req.DietType,
		Ingredients:             utils.JoinCSV(req.Ingredients),
		ForbiddenAllergies:      utils.JoinCSV(req.ForbiddenAllergies),
		AllowedHealthConditions: utils.JoinCSV(req.AllowedHealthConditions),
	}

	if err := s.productRepository.AddProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(*product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, sellerID string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if product.SellerID.String() != sellerID {
		return domain.ErrUnauthorizedSeller
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return domain.ErrInvalidStock
		}
		product.Stock = *req.Stock
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	if req.CaloriesPer100g > 0 {
		product.CaloriesPer100g = req.CaloriesPer100g
	}
	if req.ProteinPer100g > 0 {
		product.ProteinPer100g = req.ProteinPer100g
	}
	if req.FatPer100g > 0 {
		product.FatPer100g = req.FatPer100g
	}
	if req.DietType != "" {
		product.DietType = req.DietType
	}
	if req.Ingredients != nil {
		product.Ingredients = utils.JoinCSV(req.Ingredients)
	}
	if req.ForbiddenAllergies != nil {
		product.ForbiddenAllergies = utils.JoinCSV(req.ForbiddenAllergies)
	}
	if req.AllowedHealthConditions != nil {
		product.AllowedHealthConditions = utils.JoinCSV(req.AllowedHealthConditions)
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id string, sellerID string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if product.SellerID.String() != sellerID {
		return domain.ErrUnauthorizedSeller
	}

	if product.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(product.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.productRepository.DeleteProduct(ctx, id)
}

func (s *productService) GetProducts(ctx context.Context, criteria FilterCriteria) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := FilterAndSort(products, criteria)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		response = append(response, toProductResponse(p))
	}
	return response, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(*product), nil
}

func (s *productService) GetSellerProducts(ctx context.Context, sellerID string) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProductsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	return response, nil
}

func (s *productService) UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest, sellerID string) (string, error) {
	product, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrProductNotFound
		}
		return "", err
	}

	if product.SellerID.String() != sellerID {
		return "", domain.ErrUnauthorizedSeller
	}

	fileName := fmt.Sprintf("product-%s", product.ID.String())
	var objectKey string
	var uploadErr error

	if existingKey := s.s3.GetObjectKeyFromLink(product.ImageURL); existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	product.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return "", err
	}
	return product.ImageURL, nil
}

func toProductResponse(p entities.Product) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:                      p.ID.String(),
		SellerID:                p.SellerID.String(),
		Name:                    p.Name,
		Brand:                   p.Brand,
		Description:             p.Description,
		Price:                   p.Price,
		Stock:                   p.Stock,
		Available:               p.Available,
		ImageURL:                p.ImageURL,
		CaloriesPer100g:         p.CaloriesPer100g,
		ProteinPer100g:          p.ProteinPer100g,
		FatPer100g:              p.FatPer100g,
		DietType:                p.DietType,
		Ingredients:             utils.SplitCSV(p.Ingredients),
		ForbiddenAllergies:      utils.SplitCSV(p.ForbiddenAllergies),
		AllowedHealthConditions: utils.SplitCSV(p.AllowedHealthConditions),
		CreatedAt:               p.CreatedAt,
	}
	if p.Seller != nil {
		res.SellerEmail = p.Seller.Email
	}
	return res
}
