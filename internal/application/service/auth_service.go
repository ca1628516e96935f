package service

import (
	"context"
	"log"

	"github.com/shopkart/admin-api/internal/domain/entity"
	"github.com/shopkart/admin-api/internal/domain/repository"
	"github.com/shopkart/admin-api/pkg/apperror"
	"github.com/shopkart/admin-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// Login authenticates a user and returns a signed bearer token. Every failure
// path collapses into ErrInvalidCredentials so the response never reveals
// whether the username exists or the store was unreachable.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		log.Printf("login: credential lookup failed: %v", err)
		return "", apperror.ErrInvalidCredentials
	}
	if user == nil {
		return "", apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return "", apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.Username, user.RoleList())
	if err != nil {
		return "", err
	}

	return token, nil
}

// ProvisionInput represents the provisioning input
type ProvisionInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Provision stores a new staff credential. The password is always hashed
// before it reaches the repository; the plaintext is never persisted.
func (s *AuthService) Provision(ctx context.Context, input *ProvisionInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Roles:    input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
