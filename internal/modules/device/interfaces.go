package device

import (
	"context"

	"repairshop/internal/domain"
)

type DeviceRepositoryInterface interface {
	Create(ctx context.Context, d *domain.Device) error
	GetByID(ctx context.Context, id int64) (*domain.Device, error)
	List(ctx context.Context) ([]domain.Device, error)
	ExistsBySerialNumber(ctx context.Context, serial string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type RepairReader interface {
	ListByDevice(ctx context.Context, deviceID int64) ([]domain.Repair, error)
}
