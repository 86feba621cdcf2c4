package repair

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"repairshop/internal/domain"
	"repairshop/internal/repository"

	"gorm.io/gorm"
)

// maxReferenceAttempts bounds the collision-retry loop for reference number
// generation. Collisions need the same day plus the same 3 random bytes, so
// a second attempt is already rare.
const maxReferenceAttempts = 5

type Service struct {
	repairs   RepairRepositoryInterface
	customers CustomerReader
	devices   DeviceReader
	catalog   ServiceReader
}

func NewService(repairs RepairRepositoryInterface, customers CustomerReader, devices DeviceReader, catalog ServiceReader) *Service {
	return &Service{
		repairs:   repairs,
		customers: customers,
		devices:   devices,
		catalog:   catalog,
	}
}

// CreateRepair opens a new ticket for an existing customer and device. The
// reference number comes from a cryptographically random source and is
// regenerated on the off chance it collides with an existing one.
func (s *Service) CreateRepair(ctx context.Context, req CreateRepairRequest) (*domain.Repair, error) {
	problem := strings.TrimSpace(req.ProblemDescription)
	if problem == "" {
		return nil, ErrValidation
	}

	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if _, err := s.devices.GetByID(ctx, req.DeviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference, err := generateReferenceNumber(time.Now())
		if err != nil {
			return nil, err
		}

		taken, err := s.repairs.ExistsByReference(ctx, reference)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		rp := &domain.Repair{
			ReferenceNumber:    reference,
			CustomerID:         req.CustomerID,
			DeviceID:           req.DeviceID,
			ProblemDescription: problem,
			Status:             domain.RepairPending,
		}
		err = s.repairs.Create(ctx, rp)
		if err == nil {
			return rp, nil
		}
		// a concurrent insert can still win the reference; regenerate
		if repository.IsUniqueViolation(err) {
			continue
		}
		return nil, err
	}

	return nil, ErrReferenceExhausted
}

func (s *Service) GetRepair(ctx context.Context, id int64) (*domain.Repair, error) {
	rp, err := s.repairs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if c, err := s.customers.GetByID(ctx, rp.CustomerID); err == nil {
		rp.Customer = c
	}
	if d, err := s.devices.GetByID(ctx, rp.DeviceID); err == nil {
		rp.Device = d
	}
	return rp, nil
}

// ListRepairs returns every ticket, most recent request first.
func (s *Service) ListRepairs(ctx context.Context) ([]domain.Repair, error) {
	return s.repairs.List(ctx)
}

// UpdateStatus moves a ticket between pending, in_progress and completed.
// Entering completed stamps the completion date; leaving it clears it.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.RepairStatus) (*domain.Repair, error) {
	valid := false
	for _, st := range domain.ValidRepairStatuses() {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidStatus
	}

	var completionDate *time.Time
	if status == domain.RepairCompleted {
		now := time.Now()
		completionDate = &now
	}

	if err := s.repairs.UpdateStatus(ctx, id, status, completionDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetRepair(ctx, id)
}

// AddService records that a catalog service was performed on a repair.
func (s *Service) AddService(ctx context.Context, repairID int64, req AddServiceRequest) (*domain.RepairService, error) {
	if _, err := s.repairs.GetByID(ctx, repairID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	rs := &domain.RepairService{
		RepairID:      repairID,
		ServiceID:     req.ServiceID,
		DatePerformed: time.Now(),
	}
	if err := s.repairs.AddService(ctx, rs); err != nil {
		return nil, err
	}
	rs.Service = svc
	return rs, nil
}

func (s *Service) ListServices(ctx context.Context, repairID int64) ([]domain.RepairService, error) {
	if _, err := s.repairs.GetByID(ctx, repairID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repairs.ListServices(ctx, repairID)
}

func generateReferenceNumber(now time.Time) (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("REP-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(buf))), nil
}
