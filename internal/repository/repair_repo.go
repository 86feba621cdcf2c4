package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type RepairRepository struct {
	db *gorm.DB
}

func NewRepairRepository(db *gorm.DB) *RepairRepository {
	return &RepairRepository{db: db}
}

type repairModel struct {
	ID                 int64      `gorm:"column:repair_id;primaryKey"`
	ReferenceNumber    string     `gorm:"column:reference_number;uniqueIndex;size:50;not null"`
	CustomerID         int64      `gorm:"column:customer_id;index;not null"`
	DeviceID           int64      `gorm:"column:device_id;index;not null"`
	RequestDate        time.Time  `gorm:"column:request_date"`
	ProblemDescription string     `gorm:"column:problem_description;type:text;not null"`
	Status             string     `gorm:"column:status;size:20;not null;default:pending"`
	CompletionDate     *time.Time `gorm:"column:completion_date"`
}

func (repairModel) TableName() string { return "repairs" }

type repairServiceModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	RepairID      int64     `gorm:"column:repair_id;index;not null"`
	ServiceID     int64     `gorm:"column:service_id;index;not null"`
	DatePerformed time.Time `gorm:"column:date_performed"`
}

func (repairServiceModel) TableName() string { return "repair_services" }

func toDomainRepair(m repairModel) *domain.Repair {
	return &domain.Repair{
		ID:                 m.ID,
		ReferenceNumber:    m.ReferenceNumber,
		CustomerID:         m.CustomerID,
		DeviceID:           m.DeviceID,
		RequestDate:        m.RequestDate,
		ProblemDescription: m.ProblemDescription,
		Status:             domain.RepairStatus(m.Status),
		CompletionDate:     m.CompletionDate,
	}
}

func toRepairModel(rp *domain.Repair) repairModel {
	return repairModel{
		ID:                 rp.ID,
		ReferenceNumber:    rp.ReferenceNumber,
		CustomerID:         rp.CustomerID,
		DeviceID:           rp.DeviceID,
		RequestDate:        rp.RequestDate,
		ProblemDescription: rp.ProblemDescription,
		Status:             string(rp.Status),
		CompletionDate:     rp.CompletionDate,
	}
}

func (r *RepairRepository) Create(ctx context.Context, rp *domain.Repair) error {
	m := toRepairModel(rp)
	if m.RequestDate.IsZero() {
		m.RequestDate = time.Now()
	}
	if m.Status == "" {
		m.Status = string(domain.RepairPending)
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rp = *toDomainRepair(m)
	return nil
}

func (r *RepairRepository) GetByID(ctx context.Context, id int64) (*domain.Repair, error) {
	var m repairModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRepair(m), nil
}

// List returns all repairs, most recent request first.
func (r *RepairRepository) List(ctx context.Context) ([]domain.Repair, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *RepairRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Repair, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("customer_id = ?", customerID))
}

func (r *RepairRepository) ListByDevice(ctx context.Context, deviceID int64) ([]domain.Repair, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("device_id = ?", deviceID))
}

func (r *RepairRepository) ListRecent(ctx context.Context, limit int) ([]domain.Repair, error) {
	return r.list(ctx, r.db.WithContext(ctx).Limit(limit))
}

func (r *RepairRepository) list(ctx context.Context, tx *gorm.DB) ([]domain.Repair, error) {
	var rows []repairModel
	if err := tx.Order("request_date DESC, repair_id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Repair, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRepair(m))
	}
	return out, nil
}

func (r *RepairRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&repairModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *RepairRepository) CountByStatus(ctx context.Context, status domain.RepairStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&repairModel{}).
		Where("status = ?", string(status)).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *RepairRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&repairModel{}).
		Where("reference_number = ?", reference).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// UpdateStatus moves a repair to the given status. completionDate carries the
// timestamp for completed repairs and nil for the others, so a repair that
// leaves completed has its date cleared.
func (r *RepairRepository) UpdateStatus(ctx context.Context, id int64, status domain.RepairStatus, completionDate *time.Time) error {
	tx := r.db.WithContext(ctx).Model(&repairModel{}).
		Where("repair_id = ?", id).
		Updates(map[string]any{
			"status":          string(status),
			"completion_date": completionDate,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RepairRepository) AddService(ctx context.Context, rs *domain.RepairService) error {
	m := repairServiceModel{
		RepairID:      rs.RepairID,
		ServiceID:     rs.ServiceID,
		DatePerformed: rs.DatePerformed,
	}
	if m.DatePerformed.IsZero() {
		m.DatePerformed = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	rs.ID = m.ID
	rs.DatePerformed = m.DatePerformed
	return nil
}

type performedServiceRow struct {
	ID                 int64     `gorm:"column:id"`
	RepairID           int64     `gorm:"column:repair_id"`
	ServiceID          int64     `gorm:"column:service_id"`
	DatePerformed      time.Time `gorm:"column:date_performed"`
	ServiceDescription string    `gorm:"column:service_description"`
	ServiceCharge      float64   `gorm:"column:service_charge"`
}

// ListServices returns the services performed on a repair, joined with the
// catalog entry so callers get description and charge in one round trip.
func (r *RepairRepository) ListServices(ctx context.Context, repairID int64) ([]domain.RepairService, error) {
	var rows []performedServiceRow
	q := `
SELECT rs.id, rs.repair_id, rs.service_id, rs.date_performed,
       s.description AS service_description, s.charge AS service_charge
FROM repair_services rs
JOIN services s ON s.service_id = rs.service_id
WHERE rs.repair_id = ?
ORDER BY rs.date_performed DESC, rs.id DESC
`
	if err := r.db.WithContext(ctx).Raw(q, repairID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.RepairService, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.RepairService{
			ID:            row.ID,
			RepairID:      row.RepairID,
			ServiceID:     row.ServiceID,
			DatePerformed: row.DatePerformed,
			Service: &domain.Service{
				ID:          row.ServiceID,
				Description: row.ServiceDescription,
				Charge:      row.ServiceCharge,
			},
		})
	}
	return out, nil
}
