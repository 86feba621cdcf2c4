package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID        int64     `gorm:"column:customer_id;primaryKey"`
	Name      string    `gorm:"column:name;size:100;not null"`
	Address   *string   `gorm:"column:address;size:200"`
	Phone     string    `gorm:"column:phone;size:20;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	var address string
	if m.Address != nil {
		address = *m.Address
	}
	return &domain.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Address:   address,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	var address *string
	if c.Address != "" {
		v := c.Address
		address = &v
	}
	return customerModel{
		ID:        c.ID,
		Name:      c.Name,
		Address:   address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

// List returns all customers ordered by name.
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&customerModel{}).Count(&cnt)
	return cnt, tx.Error
}
