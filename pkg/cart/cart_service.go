package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/pkg/product"
)

type (
	CartService interface {
		GetCart(ctx context.Context, userID string) (domain.CartResponse, error)
		AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartResponse, error)
		UpdateLine(ctx context.Context, req domain.UpdateCartLineRequest, userID string) (domain.CartResponse, error)
		RemoveLine(ctx context.Context, productID string, userID string) (domain.CartResponse, error)
		ClearCart(ctx context.Context, userID string) error
	}

	cartService struct {
		store             *Store
		productRepository product.ProductRepository
	}
)

func NewCartService(store *Store, productRepository product.ProductRepository) CartService {
	return &cartService{
		store:             store,
		productRepository: productRepository,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	return s.toCartResponse(userID), nil
}

func (s *cartService) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartResponse, error) {
	prod, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrProductNotFound
		}
		return domain.CartResponse{}, err
	}
	if !prod.Available || prod.Stock < 1 {
		return domain.CartResponse{}, domain.ErrProductUnavailable
	}

	sellerEmail := ""
	if prod.Seller != nil {
		sellerEmail = prod.Seller.Email
	}

	s.store.Add(userID, Line{
		ProductID:   prod.ID,
		ProductName: prod.Name,
		SellerEmail: sellerEmail,
		Price:       prod.Price,
		Quantity:    req.Quantity,
	})
	return s.toCartResponse(userID), nil
}

func (s *cartService) UpdateLine(ctx context.Context, req domain.UpdateCartLineRequest, userID string) (domain.CartResponse, error) {
	productUUID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.CartResponse{}, domain.ErrParseUUID
	}

	if !s.store.UpdateQuantity(userID, productUUID, req.Quantity) {
		return domain.CartResponse{}, domain.ErrCartLineNotFound
	}
	return s.toCartResponse(userID), nil
}

func (s *cartService) RemoveLine(ctx context.Context, productID string, userID string) (domain.CartResponse, error) {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return domain.CartResponse{}, domain.ErrParseUUID
	}

	if !s.store.Remove(userID, productUUID) {
		return domain.CartResponse{}, domain.ErrCartLineNotFound
	}
	return s.toCartResponse(userID), nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	s.store.Clear(userID)
	return nil
}

func (s *cartService) toCartResponse(userID string) domain.CartResponse {
	lines := s.store.Lines(userID)

	response := domain.CartResponse{
		Lines: make([]domain.CartLineResponse, 0, len(lines)),
		Total: s.store.Total(userID),
	}
	for _, l := range lines {
		response.Lines = append(response.Lines, domain.CartLineResponse{
			ProductID:   l.ProductID.String(),
			ProductName: l.ProductName,
			SellerEmail: l.SellerEmail,
			Price:       l.Price,
			Quantity:    l.Quantity,
			LineTotal:   l.Price * float64(l.Quantity),
		})
	}
	return response
}
