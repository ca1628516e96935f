package repository

import (
	"context"

	"github.com/shopkart/admin-api/internal/domain/entity"
)

// UserRepository defines the interface for credential data operations.
// Lookups return (nil, nil) when no record matches so callers can tell a
// missing username apart from a storage failure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
