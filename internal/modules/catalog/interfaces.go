package catalog

import (
	"context"

	"repairshop/internal/domain"
)

type ServiceRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	AddPart(ctx context.Context, sp *domain.ServicePart) error
	ListParts(ctx context.Context, serviceID int64) ([]domain.ServicePart, error)
}

type PartRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Part) error
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	List(ctx context.Context) ([]domain.Part, error)
	ExistsByPartNumber(ctx context.Context, partNumber string) (bool, error)
}
