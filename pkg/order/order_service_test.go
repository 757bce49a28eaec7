package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pawplate/domain"
	"pawplate/entities"
	"pawplate/pkg/cart"
)

func TestOrderResponseKeepsSnapshotPrices(t *testing.T) {
	product := &entities.Product{
		ID:    uuid.New(),
		Name:  "Salmon Kibble",
		Price: 120000,
	}

	item := &entities.OrderItem{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    3,
	}
	order := &entities.Order{
		ID:         uuid.New(),
		TotalPrice: item.Price * float64(item.Quantity),
		Commission: 36000,
		Status:     entities.OrderStatusPending,
		Items:      []*entities.OrderItem{item},
	}

	// Catalog price changes after checkout must not leak into the order.
	product.Price = 999999

	resp := toOrderResponse(order, false)
	assert.Equal(t, float64(360000), resp.TotalPrice)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, float64(120000), resp.Items[0].Price)
	assert.Zero(t, resp.Commission)

	withCommission := toOrderResponse(order, true)
	assert.Equal(t, float64(36000), withCommission.Commission)
}

// Fakes below implement just enough of the repository interfaces for
// PlaceOrder; methods it never reaches panic.

type fakeOrderRepo struct {
	createErr error
	created   *entities.Order
	updated   *entities.Order
	calls     *[]string
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *entities.Order) error {
	*f.calls = append(*f.calls, "create")
	if f.createErr != nil {
		return f.createErr
	}
	f.created = order
	return nil
}

func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, order *entities.Order) error {
	f.updated = order
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	panic("unexpected GetOrderByID")
}

func (f *fakeOrderRepo) GetOrdersByCustomer(ctx context.Context, customerID string) ([]*entities.Order, error) {
	panic("unexpected GetOrdersByCustomer")
}

func (f *fakeOrderRepo) GetOrdersBySeller(ctx context.Context, sellerID string) ([]*entities.Order, error) {
	panic("unexpected GetOrdersBySeller")
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]*entities.Order, error) {
	panic("unexpected GetAllOrders")
}

type fakeProductRepo struct {
	products map[string]*entities.Product
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) AddProduct(ctx context.Context, product *entities.Product) error {
	panic("unexpected AddProduct")
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, product *entities.Product) error {
	panic("unexpected UpdateProduct")
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	panic("unexpected DeleteProduct")
}

func (f *fakeProductRepo) GetProducts(ctx context.Context) ([]entities.Product, error) {
	panic("unexpected GetProducts")
}

func (f *fakeProductRepo) GetProductsBySeller(ctx context.Context, sellerID string) ([]entities.Product, error) {
	panic("unexpected GetProductsBySeller")
}

type fakeUserRepo struct {
	user *entities.User
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) error {
	panic("unexpected CreateUser")
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	panic("unexpected GetUserByEmail")
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *entities.User) error {
	panic("unexpected UpdateUser")
}

func (f *fakeUserRepo) DeleteUserByEmail(ctx context.Context, email string) error {
	panic("unexpected DeleteUserByEmail")
}

func (f *fakeUserRepo) GetUsers(ctx context.Context) ([]*entities.User, error) {
	panic("unexpected GetUsers")
}

type fakeAdminRepo struct{}

func (f *fakeAdminRepo) GetCommissionRate(ctx context.Context) (float64, error) { return 0.1, nil }
func (f *fakeAdminRepo) SetCommissionRate(ctx context.Context, rate float64) error {
	panic("unexpected SetCommissionRate")
}
func (f *fakeAdminRepo) CountUsers(ctx context.Context) (int64, error) { panic("unexpected CountUsers") }
func (f *fakeAdminRepo) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	panic("unexpected CountUsersByRole")
}
func (f *fakeAdminRepo) CountProducts(ctx context.Context) (int64, error) {
	panic("unexpected CountProducts")
}
func (f *fakeAdminRepo) CountDogs(ctx context.Context) (int64, error) { panic("unexpected CountDogs") }
func (f *fakeAdminRepo) CountOrders(ctx context.Context) (int64, error) {
	panic("unexpected CountOrders")
}
func (f *fakeAdminRepo) SumRevenue(ctx context.Context) (float64, error) {
	panic("unexpected SumRevenue")
}

type fakePaymentService struct {
	calls *[]string
}

func (f *fakePaymentService) CreateTransaction(req domain.PaymentRequest) (domain.PaymentResponse, error) {
	*f.calls = append(*f.calls, "payment")
	return domain.PaymentResponse{Token: "tok", RedirectURL: "https://pay.example/" + req.OrderID}, nil
}

func (f *fakePaymentService) IsTransactionPaid(orderID string) (bool, error) {
	panic("unexpected IsTransactionPaid")
}

type checkoutFixture struct {
	service  OrderService
	orders   *fakeOrderRepo
	store    *cart.Store
	calls    *[]string
	customer *entities.User
	product  *entities.Product
}

func newCheckoutFixture() *checkoutFixture {
	calls := &[]string{}
	customer := &entities.User{
		ID:    uuid.New(),
		Name:  "Dina",
		Email: "dina@example.com",
	}
	product := &entities.Product{
		ID:        uuid.New(),
		SellerID:  uuid.New(),
		Name:      "Salmon Kibble",
		Price:     120000,
		Stock:     10,
		Available: true,
	}

	orders := &fakeOrderRepo{calls: calls}
	store := cart.NewStore()
	service := NewOrderService(
		orders,
		&fakeProductRepo{products: map[string]*entities.Product{product.ID.String(): product}},
		&fakeUserRepo{user: customer},
		&fakeAdminRepo{},
		&fakePaymentService{calls: calls},
		store,
	)

	return &checkoutFixture{
		service:  service,
		orders:   orders,
		store:    store,
		calls:    calls,
		customer: customer,
		product:  product,
	}
}

func TestPlaceOrderRejectionLeavesNoSideEffects(t *testing.T) {
	f := newCheckoutFixture()
	f.orders.createErr = gorm.ErrRecordNotFound

	f.store.Add(f.customer.ID.String(), cart.Line{
		ProductID: f.product.ID,
		Price:     f.product.Price,
		Quantity:  2,
	})

	req := domain.PlaceOrderRequest{
		Items:           []domain.OrderItemRequest{{ProductID: f.product.ID.String(), Quantity: 20}},
		ShippingAddress: "Jl. Melati 5",
	}
	_, err := f.service.PlaceOrder(context.Background(), req, f.customer.ID.String())
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// No gateway transaction and no cart mutation on the error path.
	assert.Equal(t, []string{"create"}, *f.calls)
	assert.Len(t, f.store.Lines(f.customer.ID.String()), 1)
}

func TestPlaceOrderConsumesCartLines(t *testing.T) {
	f := newCheckoutFixture()
	userID := f.customer.ID.String()

	f.store.Add(userID, cart.Line{
		ProductID: f.product.ID,
		Price:     f.product.Price,
		Quantity:  2,
	})

	req := domain.PlaceOrderRequest{ShippingAddress: "Jl. Melati 5"}
	resp, err := f.service.PlaceOrder(context.Background(), req, userID)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, float64(240000), resp.TotalPrice)
	assert.Empty(t, f.store.Lines(userID), "purchased lines must leave the cart")
}

func TestPlaceOrderOpensPaymentAfterPersisting(t *testing.T) {
	f := newCheckoutFixture()

	req := domain.PlaceOrderRequest{
		Items:           []domain.OrderItemRequest{{ProductID: f.product.ID.String(), Quantity: 1}},
		ShippingAddress: "Jl. Melati 5",
	}
	resp, err := f.service.PlaceOrder(context.Background(), req, f.customer.ID.String())
	require.NoError(t, err)

	assert.Equal(t, []string{"create", "payment"}, *f.calls)
	require.NotNil(t, f.orders.created)
	assert.Equal(t, "https://pay.example/"+f.orders.created.ID.String(), resp.PaymentURL)
	require.NotNil(t, f.orders.updated, "payment url is stored once the gateway answers")
}

func TestPlaceOrderEmptyCartAndItemsRejected(t *testing.T) {
	f := newCheckoutFixture()

	req := domain.PlaceOrderRequest{ShippingAddress: "Jl. Melati 5"}
	_, err := f.service.PlaceOrder(context.Background(), req, f.customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}
