package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopkart/admin-api/internal/domain/entity"
	"github.com/shopkart/admin-api/internal/domain/repository"
	"github.com/shopkart/admin-api/pkg/apperror"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListOrders returns all orders
func (s *OrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	OrderID  string
	Customer string
	Location string
	Amount   string
	Status   string
	Date     string
}

// CreateOrder stores a new order, generating a display ID when none is given
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		OrderID:  input.OrderID,
		Customer: input.Customer,
		Location: input.Location,
		Amount:   input.Amount,
		Status:   input.Status,
		Date:     input.Date,
	}
	if order.OrderID == "" {
		order.OrderID = fmt.Sprintf("ORD-%d", time.Now().UnixMilli()%10000)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderInput represents the update order input
type UpdateOrderInput struct {
	Customer string
	Location string
	Amount   string
	Status   string
	Date     string
}

// UpdateOrder updates an existing order. The record ID and display ID are
// never changed.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	order.Customer = input.Customer
	order.Location = input.Location
	order.Amount = input.Amount
	order.Status = input.Status
	order.Date = input.Date

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder deletes an order by ID
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}
