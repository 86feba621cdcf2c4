package repository

import (
	"context"
	"strings"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

type partModel struct {
	ID              int64   `gorm:"column:part_id;primaryKey"`
	PartNumber      string  `gorm:"column:part_number;uniqueIndex;size:50;not null"`
	Description     string  `gorm:"column:description;size:200;not null"`
	QuantityInStock int     `gorm:"column:quantity_in_stock;not null;default:0"`
	Cost            float64 `gorm:"column:cost;type:decimal(10,2);not null"`
}

func (partModel) TableName() string { return "parts" }

func toDomainPart(m partModel) *domain.Part {
	return &domain.Part{
		ID:              m.ID,
		PartNumber:      m.PartNumber,
		Description:     m.Description,
		QuantityInStock: m.QuantityInStock,
		Cost:            m.Cost,
	}
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	m := partModel{
		PartNumber:      strings.TrimSpace(p.PartNumber),
		Description:     p.Description,
		QuantityInStock: p.QuantityInStock,
		Cost:            p.Cost,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPart(m)
	return nil
}

func (r *PartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	var m partModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPart(m), nil
}

func (r *PartRepository) List(ctx context.Context) ([]domain.Part, error) {
	var rows []partModel
	tx := r.db.WithContext(ctx).Order("part_number ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Part, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPart(m))
	}
	return out, nil
}

func (r *PartRepository) ExistsByPartNumber(ctx context.Context, partNumber string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&partModel{}).
		Where("part_number = ?", strings.TrimSpace(partNumber)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
