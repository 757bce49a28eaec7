package order

import (
	"context"

	"gorm.io/gorm"

	"pawplate/entities"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		UpdateOrder(ctx context.Context, order *entities.Order) error
		GetOrdersByCustomer(ctx context.Context, customerID string) ([]*entities.Order, error)
		GetOrdersBySeller(ctx context.Context, sellerID string) ([]*entities.Order, error)
		GetAllOrders(ctx context.Context) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder decrements stock for every item and inserts the order with
// its snapshots in a single transaction. A line whose product lacks stock
// aborts with gorm.ErrRecordNotFound and nothing is written; the WHERE
// clause is the arbiter under concurrent checkouts.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			res := tx.Model(&entities.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

func (r *orderRepository) GetOrdersByCustomer(ctx context.Context, customerID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrdersBySeller returns every order containing at least one item sold
// by the seller.
func (r *orderRepository) GetOrdersBySeller(ctx context.Context, sellerID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("id IN (?)", r.db.Model(&entities.OrderItem{}).
			Select("order_id").
			Where("seller_id = ?", sellerID)).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
