package dashboard

import (
	"context"

	"repairshop/internal/domain"
)

const recentRepairsLimit = 5

type CustomerCounter interface {
	Count(ctx context.Context) (int64, error)
}

type DeviceCounter interface {
	Count(ctx context.Context) (int64, error)
}

type RepairStatsReader interface {
	CountByStatus(ctx context.Context, status domain.RepairStatus) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Repair, error)
}

// Stats is the dashboard summary: entity counts plus the latest tickets.
type Stats struct {
	TotalCustomers   int64           `json:"total_customers"`
	TotalDevices     int64           `json:"total_devices"`
	PendingRepairs   int64           `json:"pending_repairs"`
	CompletedRepairs int64           `json:"completed_repairs"`
	RecentRepairs    []domain.Repair `json:"recent_repairs"`
}

type Service struct {
	customers CustomerCounter
	devices   DeviceCounter
	repairs   RepairStatsReader
}

func NewService(customers CustomerCounter, devices DeviceCounter, repairs RepairStatsReader) *Service {
	return &Service{
		customers: customers,
		devices:   devices,
		repairs:   repairs,
	}
}

func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.TotalCustomers, err = s.customers.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDevices, err = s.devices.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRepairs, err = s.repairs.CountByStatus(ctx, domain.RepairPending); err != nil {
		return nil, err
	}
	if stats.CompletedRepairs, err = s.repairs.CountByStatus(ctx, domain.RepairCompleted); err != nil {
		return nil, err
	}
	if stats.RecentRepairs, err = s.repairs.ListRecent(ctx, recentRepairsLimit); err != nil {
		return nil, err
	}
	return stats, nil
}
