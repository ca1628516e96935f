package repository

import (
	"context"

	"github.com/shopkart/admin-api/internal/domain/entity"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]entity.Order, error)
	Count(ctx context.Context) (int64, error)
}
