package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"repairshop/internal/domain"
)

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *mockServiceRepo) AddPart(ctx context.Context, sp *domain.ServicePart) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *mockServiceRepo) ListParts(ctx context.Context, serviceID int64) ([]domain.ServicePart, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServicePart), args.Error(1)
}

type mockPartRepo struct {
	mock.Mock
}

func (m *mockPartRepo) Create(ctx context.Context, p *domain.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPartRepo) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *mockPartRepo) List(ctx context.Context) ([]domain.Part, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Part), args.Error(1)
}

func (m *mockPartRepo) ExistsByPartNumber(ctx context.Context, partNumber string) (bool, error) {
	args := m.Called(ctx, partNumber)
	return args.Bool(0), args.Error(1)
}

func TestService_CreateService_Success(t *testing.T) {
	serviceRepo := new(mockServiceRepo)
	partRepo := new(mockPartRepo)

	serviceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(serviceRepo, partRepo)

	svc, err := service.CreateService(context.Background(), CreateServiceRequest{
		Description: " Screen replacement ",
		Charge:      89.99,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Screen replacement", svc.Description)
	assert.Equal(t, 89.99, svc.Charge)
}

func TestService_CreateService_MissingDescription(t *testing.T) {
	serviceRepo := new(mockServiceRepo)
	partRepo := new(mockPartRepo)

	service := NewService(serviceRepo, partRepo)

	_, err := service.CreateService(context.Background(), CreateServiceRequest{
		Description: "   ",
		Charge:      10,
	})

	assert.ErrorIs(t, err, ErrValidation)
	serviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreatePart_DuplicatePartNumber(t *testing.T) {
	serviceRepo := new(mockServiceRepo)
	partRepo := new(mockPartRepo)

	partRepo.On("ExistsByPartNumber", mock.Anything, "SCR-IP12").Return(true, nil)

	service := NewService(serviceRepo, partRepo)

	_, err := service.CreatePart(context.Background(), CreatePartRequest{
		PartNumber:  "SCR-IP12",
		Description: "iPhone 12 OLED screen",
		Cost:        54.20,
	})

	assert.ErrorIs(t, err, ErrPartNumberExists)
	partRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreatePart_Success(t *testing.T) {
	serviceRepo := new(mockServiceRepo)
	partRepo := new(mockPartRepo)

	partRepo.On("ExistsByPartNumber", mock.Anything, "BAT-UNI-3000").Return(false, nil)
	partRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(serviceRepo, partRepo)

	p, err := service.CreatePart(context.Background(), CreatePartRequest{
		PartNumber:      " BAT-UNI-3000 ",
		Description:     "3000mAh battery",
		QuantityInStock: 15,
		Cost:            12.80,
	})

	assert.NoError(t, err)
	assert.Equal(t, "BAT-UNI-3000", p.PartNumber)
	partRepo.AssertExpectations(t)
}

func TestService_AddPart_DefaultsQuantityToOne(t *testing.T) {
	serviceRepo := new(mockServiceRepo)
	partRepo := new(mockPartRepo)

	serviceRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Service{ID: 1}, nil)
	partRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Part{ID: 2}, nil)
	serviceRepo.On("AddPart", mock.Anything, mock.Anything).Return(nil)

	service := NewService(serviceRepo, partRepo)

	sp, err := service.AddPart(context.Background(), 1, AddPartRequest{PartID: 2})

	assert.NoError(t, err)
	assert.Equal(t, 1, sp.QuantityRequired)
	assert.NotNil(t, sp.Part)
}

func TestService_AddPart_UnknownPart(t *testing.T) {
	serviceRepo := new(mockServiceRepo)
	partRepo := new(mockPartRepo)

	serviceRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Service{ID: 1}, nil)
	partRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(serviceRepo, partRepo)

	_, err := service.AddPart(context.Background(), 1, AddPartRequest{PartID: 99})

	assert.ErrorIs(t, err, ErrPartNotFound)
	serviceRepo.AssertNotCalled(t, "AddPart", mock.Anything, mock.Anything)
}

func TestService_ListServiceParts_UnknownService(t *testing.T) {
	serviceRepo := new(mockServiceRepo)
	partRepo := new(mockPartRepo)

	serviceRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(serviceRepo, partRepo)

	_, err := service.ListServiceParts(context.Background(), 99)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
