package repository

import (
	"context"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64   `gorm:"column:service_id;primaryKey"`
	Description string  `gorm:"column:description;size:200;not null"`
	Charge      float64 `gorm:"column:charge;type:decimal(10,2);not null"`
}

func (serviceModel) TableName() string { return "services" }

type servicePartModel struct {
	ID               int64 `gorm:"column:id;primaryKey"`
	ServiceID        int64 `gorm:"column:service_id;index;not null"`
	PartID           int64 `gorm:"column:part_id;index;not null"`
	QuantityRequired int   `gorm:"column:quantity_required;not null;default:1"`
}

func (servicePartModel) TableName() string { return "service_parts" }

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:          m.ID,
		Description: m.Description,
		Charge:      m.Charge,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		Description: s.Description,
		Charge:      s.Charge,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var rows []serviceModel
	tx := r.db.WithContext(ctx).Order("service_id ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) AddPart(ctx context.Context, sp *domain.ServicePart) error {
	m := servicePartModel{
		ServiceID:        sp.ServiceID,
		PartID:           sp.PartID,
		QuantityRequired: sp.QuantityRequired,
	}
	if m.QuantityRequired == 0 {
		m.QuantityRequired = 1
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	sp.ID = m.ID
	sp.QuantityRequired = m.QuantityRequired
	return nil
}

type billOfMaterialsRow struct {
	ID               int64   `gorm:"column:id"`
	ServiceID        int64   `gorm:"column:service_id"`
	PartID           int64   `gorm:"column:part_id"`
	QuantityRequired int     `gorm:"column:quantity_required"`
	PartNumber       string  `gorm:"column:part_number"`
	PartDescription  string  `gorm:"column:part_description"`
	PartCost         float64 `gorm:"column:part_cost"`
	QuantityInStock  int     `gorm:"column:quantity_in_stock"`
}

// ListParts returns the bill of materials for a service, joined with the
// inventory row for each part.
func (r *ServiceRepository) ListParts(ctx context.Context, serviceID int64) ([]domain.ServicePart, error) {
	var rows []billOfMaterialsRow
	q := `
SELECT sp.id, sp.service_id, sp.part_id, sp.quantity_required,
       p.part_number, p.description AS part_description,
       p.cost AS part_cost, p.quantity_in_stock
FROM service_parts sp
JOIN parts p ON p.part_id = sp.part_id
WHERE sp.service_id = ?
ORDER BY sp.id ASC
`
	if err := r.db.WithContext(ctx).Raw(q, serviceID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ServicePart, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ServicePart{
			ID:               row.ID,
			ServiceID:        row.ServiceID,
			PartID:           row.PartID,
			QuantityRequired: row.QuantityRequired,
			Part: &domain.Part{
				ID:              row.PartID,
				PartNumber:      row.PartNumber,
				Description:     row.PartDescription,
				QuantityInStock: row.QuantityInStock,
				Cost:            row.PartCost,
			},
		})
	}
	return out, nil
}
