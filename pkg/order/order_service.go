package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/internal/utils/mailing"
	"pawplate/pkg/admin"
	"pawplate/pkg/cart"
	"pawplate/pkg/payment"
	"pawplate/pkg/product"
	"pawplate/pkg/user"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error)
		GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetMyOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error)
		GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error)
		GetSellerOrders(ctx context.Context, sellerID string) ([]domain.OrderResponse, error)
		UpdateSellerOrderStatus(ctx context.Context, orderID string, sellerID string, req domain.UpdateOrderStatusRequest) error
		ConfirmPayment(ctx context.Context, orderID string) error
	}

	orderService struct {
		orderRepository   OrderRepository
		productRepository product.ProductRepository
		userRepository    user.UserRepository
		adminRepository   admin.AdminRepository
		paymentService    payment.PaymentService
		cartStore         *cart.Store
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	productRepository product.ProductRepository,
	userRepository user.UserRepository,
	adminRepository admin.AdminRepository,
	paymentService payment.PaymentService,
	cartStore *cart.Store,
) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		productRepository: productRepository,
		userRepository:    userRepository,
		adminRepository:   adminRepository,
		paymentService:    paymentService,
		cartStore:         cartStore,
	}
}

// PlaceOrder snapshots the products, computes the platform commission and
// persists the order with its stock decrements in one transaction, then
// opens a payment transaction. The total is always recomputed server side
// from current catalog prices. Without explicit items the caller's
// server-side cart supplies the lines.
func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error) {
	customerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	customer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrUserNotFound
		}
		return domain.OrderResponse{}, err
	}

	lines := req.Items
	if len(lines) == 0 {
		for _, l := range s.cartStore.Lines(userID) {
			lines = append(lines, domain.OrderItemRequest{
				ProductID: l.ProductID.String(),
				Quantity:  l.Quantity,
			})
		}
	}
	if len(lines) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyOrder
	}
	if req.ShippingAddress == "" {
		return domain.OrderResponse{}, domain.ErrShippingAddressMissing
	}

	orderID := uuid.New()
	items := make([]*entities.OrderItem, 0, len(lines))
	var total float64

	for _, line := range lines {
		prod, err := s.productRepository.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.OrderResponse{}, domain.ErrProductNotFound
			}
			return domain.OrderResponse{}, err
		}
		if !prod.Available {
			return domain.OrderResponse{}, domain.ErrProductUnavailable
		}

		sellerEmail := ""
		if prod.Seller != nil {
			sellerEmail = prod.Seller.Email
		}

		items = append(items, &entities.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   prod.ID,
			ProductName: prod.Name,
			SellerID:    prod.SellerID,
			SellerEmail: sellerEmail,
			Price:       prod.Price,
			Quantity:    line.Quantity,
		})
		total += prod.Price * float64(line.Quantity)
	}

	rate, err := s.adminRepository.GetCommissionRate(ctx)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	order := &entities.Order{
		ID:              orderID,
		CustomerID:      customerUUID,
		TotalPrice:      total,
		Commission:      total * rate,
		Status:          entities.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		Items:           items,
	}

	// Stock decrements and the insert share one transaction inside the
	// repository; a rejected line rolls back everything.
	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrInsufficientStock
		}
		return domain.OrderResponse{}, err
	}

	// The gateway transaction is opened only after the order row exists,
	// so a failed insert never leaves a dangling payable at the gateway.
	// Payment itself is best effort; the order stands even when the
	// gateway is down and can be paid later through the webhook.
	payResp, err := s.paymentService.CreateTransaction(domain.PaymentRequest{
		OrderID:       orderID.String(),
		GrossAmount:   int64(total),
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
	})
	if err != nil {
		log.Printf("failed to create payment transaction for order %s: %v", orderID, err)
	} else {
		order.PaymentURL = payResp.RedirectURL
		if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
			log.Printf("failed to store payment url for order %s: %v", orderID, err)
		}
	}

	// The purchased lines leave the caller's cart.
	for _, item := range items {
		s.cartStore.Remove(userID, item.ProductID)
	}

	go func(email, name string, o *entities.Order) {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your order <b>%s</b> has been placed. Total: %.2f.</p>",
			name, o.ID, o.TotalPrice,
		)
		if err := mailing.SendMail(email, "Order Confirmation", body); err != nil {
			log.Printf("failed to send order confirmation to %s: %v", email, err)
		}
	}(customer.Email, customer.Name, order)

	return toOrderResponse(order, false), nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, false))
	}
	return response, nil
}

func (s *orderService) GetMyOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	if order.CustomerID.String() != userID {
		return domain.OrderResponse{}, domain.ErrUserNotAllowed
	}
	return toOrderResponse(order, false), nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, true))
	}
	return response, nil
}

// GetSellerOrders narrows every order down to the seller's own items;
// totals and commission are computed over that slice only.
func (s *orderService) GetSellerOrders(ctx context.Context, sellerID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	rate, err := s.adminRepository.GetCommissionRate(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]domain.OrderItemResponse, 0, len(o.Items))
		var subtotal float64
		for _, item := range o.Items {
			if item.SellerID.String() != sellerID {
				continue
			}
			items = append(items, toOrderItemResponse(item))
			subtotal += item.Price * float64(item.Quantity)
		}

		response = append(response, domain.OrderResponse{
			ID:              o.ID.String(),
			Status:          o.Status,
			TotalPrice:      subtotal,
			Commission:      subtotal * rate,
			ShippingAddress: o.ShippingAddress,
			Notes:           o.Notes,
			Paid:            o.Paid,
			Items:           items,
			CreatedAt:       o.CreatedAt,
		})
	}
	return response, nil
}

func (s *orderService) UpdateSellerOrderStatus(ctx context.Context, orderID string, sellerID string, req domain.UpdateOrderStatusRequest) error {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	sells := false
	for _, item := range order.Items {
		if item.SellerID.String() == sellerID {
			sells = true
			break
		}
	}
	if !sells {
		return domain.ErrNotSellerOrder
	}

	if err := CheckTransition(order.Status, req.Status); err != nil {
		return err
	}

	order.Status = req.Status
	return s.orderRepository.UpdateOrder(ctx, order)
}

// ConfirmPayment is driven by the gateway webhook. The transaction status
// is re-fetched from the gateway rather than trusted from the payload.
func (s *orderService) ConfirmPayment(ctx context.Context, orderID string) error {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	if order.Paid {
		return nil
	}

	paid, err := s.paymentService.IsTransactionPaid(orderID)
	if err != nil {
		return err
	}
	if !paid {
		return nil
	}

	order.Paid = true
	if order.Status == entities.OrderStatusPending {
		order.Status = entities.OrderStatusConfirmed
	}
	return s.orderRepository.UpdateOrder(ctx, order)
}

func toOrderItemResponse(item *entities.OrderItem) domain.OrderItemResponse {
	return domain.OrderItemResponse{
		ProductID:   item.ProductID.String(),
		ProductName: item.ProductName,
		SellerEmail: item.SellerEmail,
		Price:       item.Price,
		Quantity:    item.Quantity,
	}
}

func toOrderResponse(o *entities.Order, withCommission bool) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, toOrderItemResponse(item))
	}

	resp := domain.OrderResponse{
		ID:              o.ID.String(),
		Status:          o.Status,
		TotalPrice:      o.TotalPrice,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		PaymentURL:      o.PaymentURL,
		Paid:            o.Paid,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
	if withCommission {
		resp.Commission = o.Commission
	}
	return resp
}
