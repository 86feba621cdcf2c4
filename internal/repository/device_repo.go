package repository

import (
	"context"
	"strings"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

type deviceModel struct {
	ID           int64     `gorm:"column:device_id;primaryKey"`
	DeviceType   string    `gorm:"column:device_type;size:50;not null"`
	Model        string    `gorm:"column:model;size:100;not null"`
	SerialNumber string    `gorm:"column:serial_number;uniqueIndex;size:100;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (deviceModel) TableName() string { return "devices" }

func toDomainDevice(m deviceModel) *domain.Device {
	return &domain.Device{
		ID:           m.ID,
		DeviceType:   m.DeviceType,
		Model:        m.Model,
		SerialNumber: m.SerialNumber,
		CreatedAt:    m.CreatedAt,
	}
}

func toDeviceModel(d *domain.Device) deviceModel {
	return deviceModel{
		ID:           d.ID,
		DeviceType:   d.DeviceType,
		Model:        d.Model,
		SerialNumber: strings.TrimSpace(d.SerialNumber),
		CreatedAt:    d.CreatedAt,
	}
}

func (r *DeviceRepository) Create(ctx context.Context, d *domain.Device) error {
	m := toDeviceModel(d)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDevice(m)
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	var m deviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDevice(m), nil
}

// List returns all devices ordered by device type.
func (r *DeviceRepository) List(ctx context.Context) ([]domain.Device, error) {
	var rows []deviceModel
	tx := r.db.WithContext(ctx).Order("device_type ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Device, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDevice(m))
	}
	return out, nil
}

func (r *DeviceRepository) ExistsBySerialNumber(ctx context.Context, serial string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&deviceModel{}).
		Where("serial_number = ?", strings.TrimSpace(serial)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *DeviceRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&deviceModel{}).Count(&cnt)
	return cnt, tx.Error
}
