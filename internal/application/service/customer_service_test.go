package service

import (
	"context"
	"testing"

	"github.com/shopkart/admin-api/internal/domain/entity"
	"github.com/shopkart/admin-api/pkg/apperror"
)

type memCustomerRepo struct {
	customers []entity.Customer
	err       error
}

func (r *memCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if r.err != nil {
		return r.err
	}
	customer.ID = uint(len(r.customers) + 1)
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id uint) (*entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.customers {
		if r.customers[i].ID == id {
			return &r.customers[i], nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = *customer
		}
	}
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id uint) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memCustomerRepo) FindAll(_ context.Context) ([]entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.customers, nil
}

func (r *memCustomerRepo) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.customers)), nil
}

func TestCreateCustomer(t *testing.T) {
	repo := &memCustomerRepo{}
	svc := NewCustomerService(repo)

	customer, err := svc.CreateCustomer(context.Background(), &CustomerInput{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Phone:    "+91 98765 43210",
		Location: "Mumbai",
		Orders:   3,
		Status:   "Active",
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if customer.ID == 0 {
		t.Error("expected record ID to be assigned")
	}
	if len(repo.customers) != 1 || repo.customers[0].Name != "Priya Sharma" {
		t.Errorf("customer was not stored: %+v", repo.customers)
	}
}

func TestUpdateCustomer(t *testing.T) {
	repo := &memCustomerRepo{customers: []entity.Customer{
		{ID: 1, Name: "Priya Sharma", Status: "Active", Orders: 3},
	}}
	svc := NewCustomerService(repo)

	customer, err := svc.UpdateCustomer(context.Background(), 1, &CustomerInput{
		Name:     "Priya Sharma",
		Location: "Pune",
		Orders:   4,
		Status:   "Inactive",
	})
	if err != nil {
		t.Fatalf("UpdateCustomer failed: %v", err)
	}
	if customer.ID != 1 {
		t.Errorf("record ID changed on update: %+v", customer)
	}
	if customer.Location != "Pune" || customer.Orders != 4 || customer.Status != "Inactive" {
		t.Errorf("fields were not updated: %+v", customer)
	}
}

func TestUpdateCustomerNotFound(t *testing.T) {
	svc := NewCustomerService(&memCustomerRepo{})

	_, err := svc.UpdateCustomer(context.Background(), 42, &CustomerInput{Name: "Nobody"})
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("expected 404, got %d", appErr.Code)
	}
}

func TestDeleteCustomer(t *testing.T) {
	repo := &memCustomerRepo{customers: []entity.Customer{{ID: 1, Name: "Priya Sharma"}}}
	svc := NewCustomerService(repo)

	if err := svc.DeleteCustomer(context.Background(), 1); err != nil {
		t.Fatalf("DeleteCustomer failed: %v", err)
	}
	if len(repo.customers) != 0 {
		t.Errorf("customer was not removed: %+v", repo.customers)
	}

	if err := svc.DeleteCustomer(context.Background(), 1); err == nil {
		t.Error("deleting a missing customer should fail")
	}
}
