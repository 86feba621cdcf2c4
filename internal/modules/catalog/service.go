package catalog

import (
	"context"
	"errors"
	"strings"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"
	"repairshop/internal/repository"

	"gorm.io/gorm"
)

// Service covers the billable-service catalog and the parts inventory,
// including the bill of materials linking the two.
type Service struct {
	services ServiceRepositoryInterface
	parts    PartRepositoryInterface
}

func NewService(services ServiceRepositoryInterface, parts PartRepositoryInterface) *Service {
	return &Service{
		services: services,
		parts:    parts,
	}
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Description: strings.TrimSpace(req.Description),
		Charge:      req.Charge,
	}
	if fields := validator.Validate(svc); fields != nil {
		return nil, ErrValidation
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) CreatePart(ctx context.Context, req CreatePartRequest) (*domain.Part, error) {
	p := &domain.Part{
		PartNumber:      strings.TrimSpace(req.PartNumber),
		Description:     strings.TrimSpace(req.Description),
		QuantityInStock: req.QuantityInStock,
		Cost:            req.Cost,
	}
	if fields := validator.Validate(p); fields != nil {
		return nil, ErrValidation
	}

	exists, err := s.parts.ExistsByPartNumber(ctx, p.PartNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPartNumberExists
	}

	if err := s.parts.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrPartNumberExists
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListParts(ctx context.Context) ([]domain.Part, error) {
	return s.parts.List(ctx)
}

// AddPart appends one bill-of-materials row to a service. Quantity defaults
// to 1 when the caller leaves it out.
func (s *Service) AddPart(ctx context.Context, serviceID int64, req AddPartRequest) (*domain.ServicePart, error) {
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	part, err := s.parts.GetByID(ctx, req.PartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}

	quantity := req.QuantityRequired
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrValidation
	}

	sp := &domain.ServicePart{
		ServiceID:        serviceID,
		PartID:           req.PartID,
		QuantityRequired: quantity,
	}
	if err := s.services.AddPart(ctx, sp); err != nil {
		return nil, err
	}
	sp.Part = part
	return sp, nil
}

// ListServiceParts returns the bill of materials for one service.
func (s *Service) ListServiceParts(ctx context.Context, serviceID int64) ([]domain.ServicePart, error) {
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return s.services.ListParts(ctx, serviceID)
}
