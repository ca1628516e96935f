package service

import (
	"context"

	"github.com/shopkart/admin-api/internal/domain/entity"
	"github.com/shopkart/admin-api/internal/domain/repository"
	"github.com/shopkart/admin-api/pkg/apperror"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// ListCustomers returns all customers
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.FindAll(ctx)
}

// CustomerInput represents the customer create/update input
type CustomerInput struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Orders   int
	Status   string
}

// CreateCustomer stores a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Location: input.Location,
		Orders:   input.Orders,
		Status:   input.Status,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Location = input.Location
	customer.Orders = input.Orders
	customer.Status = input.Status

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer by ID
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}
