package repair

import (
	"context"
	"time"

	"repairshop/internal/domain"
)

type RepairRepositoryInterface interface {
	Create(ctx context.Context, rp *domain.Repair) error
	GetByID(ctx context.Context, id int64) (*domain.Repair, error)
	List(ctx context.Context) ([]domain.Repair, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Repair, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RepairStatus, completionDate *time.Time) error
	AddService(ctx context.Context, rs *domain.RepairService) error
	ListServices(ctx context.Context, repairID int64) ([]domain.RepairService, error)
}

type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type DeviceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Device, error)
}

type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
