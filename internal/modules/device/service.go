package device

import (
	"context"
	"errors"
	"strings"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"
	"repairshop/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	devices DeviceRepositoryInterface
	repairs RepairReader
}

func NewService(devices DeviceRepositoryInterface, repairs RepairReader) *Service {
	return &Service{
		devices: devices,
		repairs: repairs,
	}
}

func (s *Service) CreateDevice(ctx context.Context, req CreateDeviceRequest) (*domain.Device, error) {
	d := &domain.Device{
		DeviceType:   strings.TrimSpace(req.DeviceType),
		Model:        strings.TrimSpace(req.Model),
		SerialNumber: strings.TrimSpace(req.SerialNumber),
	}
	if fields := validator.Validate(d); fields != nil {
		return nil, ErrValidation
	}

	exists, err := s.devices.ExistsBySerialNumber(ctx, d.SerialNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSerialNumberExists
	}

	if err := s.devices.Create(ctx, d); err != nil {
		// the pre-check races with concurrent inserts; the constraint is
		// the source of truth
		if repository.IsUniqueViolation(err) {
			return nil, ErrSerialNumberExists
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) GetDevice(ctx context.Context, id int64) (*domain.Device, error) {
	d, err := s.devices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDevices(ctx context.Context) ([]domain.Device, error) {
	return s.devices.List(ctx)
}

// ListRepairs returns the device's repair history, most recent first.
func (s *Service) ListRepairs(ctx context.Context, deviceID int64) ([]domain.Repair, error) {
	if _, err := s.GetDevice(ctx, deviceID); err != nil {
		return nil, err
	}
	return s.repairs.ListByDevice(ctx, deviceID)
}
