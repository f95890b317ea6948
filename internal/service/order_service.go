package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"storefront-api/internal/events"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
}

// CartItem is one line of the client-held cart. Qty 0 or absent means 1.
type CartItem struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

type CreateOrderRequest struct {
	Items []CartItem `json:"items"`
}

type orderService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	publisher   events.Publisher
}

func NewOrderService(pRepo repository.ProductRepository, oRepo repository.OrderRepository, pub events.Publisher) OrderService {
	if pub == nil {
		pub = events.Nop()
	}
	return &orderService{
		productRepo: pRepo,
		orderRepo:   oRepo,
		publisher:   pub,
	}
}

// CreateOrder prices the cart against the live catalog and stores it.
// Every item is checked before anything is written; stock is advisory and
// is not decremented.
func (s *orderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*model.Order, error) {
	// 1. Cart shape
	if req == nil || len(req.Items) == 0 {
		return nil, validationError("cart is empty")
	}
	ids := make([]string, 0, len(req.Items))
	for i, item := range req.Items {
		if strings.TrimSpace(item.ID) == "" {
			return nil, validationError("item %d has no product id", i)
		}
		if item.Qty < 0 {
			return nil, validationError("item %s has negative quantity", item.ID)
		}
		ids = append(ids, item.ID)
	}

	// 2. Resolve active products in one round trip
	products, err := s.productRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 3. Price every line
	var total int64
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		product, ok := products[item.ID]
		if !ok {
			return nil, validationError("product not available: %s", item.ID)
		}
		qty := item.Qty
		if qty == 0 {
			qty = 1
		}
		line, ok := lineTotal(product.Price, qty)
		if !ok || total > math.MaxInt64-line {
			return nil, validationError("order total too large at item %s", item.ID)
		}
		total += line
		items = append(items, model.OrderItem{ProductID: item.ID, Quantity: qty})
	}

	// 4. Persist
	order := &model.Order{
		BaseModel: model.BaseModel{CreatedAt: nowFunc()},
		Items:     items,
		Total:     total,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	events.Emit(ctx, s.publisher, events.New(
		events.TypeOrder, events.ActionOrderCreated, order.ID,
		fmt.Sprintf("order %s placed, total %d", order.ID, order.Total), order,
	))
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// lineTotal multiplies price by qty, reporting false on int64 overflow.
func lineTotal(price int64, qty int) (int64, bool) {
	q := int64(qty)
	if price != 0 && q > math.MaxInt64/price {
		return 0, false
	}
	return price * q, true
}
