package customer

import (
	"context"
	"errors"
	"strings"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	customers CustomerRepositoryInterface
	repairs   RepairReader
}

func NewService(customers CustomerRepositoryInterface, repairs RepairReader) *Service {
	return &Service{
		customers: customers,
		repairs:   repairs,
	}
}

func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	c := &domain.Customer{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		Phone:   strings.TrimSpace(req.Phone),
	}
	if fields := validator.Validate(c); fields != nil {
		return nil, ErrValidation
	}

	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

// ListRepairs returns the customer's repair history, most recent first.
func (s *Service) ListRepairs(ctx context.Context, customerID int64) ([]domain.Repair, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	return s.repairs.ListByCustomer(ctx, customerID)
}
