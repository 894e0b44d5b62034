package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pranesta/internal/models"
	"pranesta/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) SetPaymentReference(id, reference string) error {
	args := m.Called(id, reference)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePayment(id string, status models.OrderStatus, reference string) error {
	args := m.Called(id, status, reference)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestOrderService_CreateOrder_Total(t *testing.T) {
	tests := []struct {
		name      string
		items     []models.OrderItem
		wantTotal float64
	}{
		{
			name: "single line",
			items: []models.OrderItem{
				{ProductID: "p1", Title: "Ring", Price: 500, Qty: 2},
			},
			wantTotal: 1000,
		},
		{
			name: "multiple lines",
			items: []models.OrderItem{
				{ProductID: "p1", Title: "Ring", Price: 500, Qty: 2},
				{ProductID: "p2", Title: "Chain", Price: 249.50, Qty: 1},
				{ProductID: "p3", Title: "Stud", Price: 0, Qty: 3},
			},
			wantTotal: 1249.50,
		},
		{
			name: "free item only",
			items: []models.OrderItem{
				{ProductID: "p4", Title: "Sample", Price: 0, Qty: 1},
			},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			service := services.NewOrderService(mockRepo, nil)

			mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

			order, err := service.CreateOrder(tt.items, "A", "a@x.com", "")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, order.Total)
			assert.GreaterOrEqual(t, order.Total, 0.0)
			assert.Equal(t, models.StatusPending, order.Status)
			assert.NotEmpty(t, order.ID)
			assert.Empty(t, order.PaymentReference)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_PersistsPendingOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewOrderService(mockRepo, mockPublisher)

	var persisted *models.Order
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(0).(*models.Order)
		}).
		Return(nil).Once()
	mockPublisher.On("Publish", services.EventOrderCreated, mock.Anything).Return(nil).Once()

	items := []models.OrderItem{{ProductID: "p1", Title: "Ring", Price: 500, Qty: 2}}
	order, err := service.CreateOrder(items, "A", "a@x.com", "12 Park Lane")

	assert.NoError(t, err)
	assert.Equal(t, order, persisted)
	assert.Equal(t, models.StatusPending, persisted.Status)
	assert.Equal(t, "A", persisted.CustomerName)
	assert.Equal(t, "a@x.com", persisted.CustomerEmail)
	assert.Equal(t, "12 Park Lane", persisted.CustomerAddress)
	assert.Equal(t, items, persisted.Items)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).
		Return(fmt.Errorf("database error")).Once()

	items := []models.OrderItem{{ProductID: "p1", Title: "Ring", Price: 500, Qty: 1}}
	order, err := service.CreateOrder(items, "A", "a@x.com", "")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewOrderService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPublisher.On("Publish", services.EventOrderCreated, mock.Anything).
		Return(fmt.Errorf("broker down")).Once()

	items := []models.OrderItem{{ProductID: "p1", Title: "Ring", Price: 500, Qty: 1}}
	order, err := service.CreateOrder(items, "A", "a@x.com", "")

	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
