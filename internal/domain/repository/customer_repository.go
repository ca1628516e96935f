package repository

import (
	"context"

	"github.com/shopkart/admin-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
