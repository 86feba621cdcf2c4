package customer

import (
	"context"

	"repairshop/internal/domain"
)

type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
}

// RepairReader is the slice of the repair repository this module needs to
// answer "repairs for customer X" without reaching through relations.
type RepairReader interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Repair, error)
}
