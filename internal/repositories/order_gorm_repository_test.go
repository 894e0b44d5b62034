package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pranesta/internal/models"
	"pranesta/internal/repositories"
)

// setupOrderDB opens a fresh in-memory SQLite database per test.
func setupOrderDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestGORMOrderRepository_CreateAndGetByID(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupOrderDB(t))

	order := &models.Order{
		Items: []models.OrderItem{
			{ProductID: "p1", Title: "Ring", Price: 500, Qty: 2, Image: "https://cdn.test/ring.jpg"},
			{ProductID: "p2", Title: "Chain", Price: 300, Qty: 1},
		},
		Total:         1300,
		CustomerName:  "A",
		CustomerEmail: "a@x.com",
		Status:        models.StatusPending,
	}

	err := repo.Create(order)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID, "repository should assign an id")

	fetched, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, models.StatusPending, fetched.Status)
	assert.Equal(t, 1300.0, fetched.Total)
	// Items round-trip through the JSON document column intact.
	assert.Equal(t, order.Items, fetched.Items)
	assert.Empty(t, fetched.PaymentReference)
}

func TestGORMOrderRepository_GetByID_NotFound(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupOrderDB(t))

	_, err := repo.GetByID("does-not-exist")
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestGORMOrderRepository_SetPaymentReference(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupOrderDB(t))

	order := &models.Order{
		Items:         []models.OrderItem{{ProductID: "p1", Title: "Ring", Price: 500, Qty: 1}},
		Total:         500,
		CustomerName:  "A",
		CustomerEmail: "a@x.com",
		Status:        models.StatusPending,
	}
	assert.NoError(t, repo.Create(order))

	assert.NoError(t, repo.SetPaymentReference(order.ID, "PRN-abc123"))

	fetched, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, "PRN-abc123", fetched.PaymentReference)
	assert.Equal(t, models.StatusPending, fetched.Status, "reference write must not touch the status")

	err = repo.SetPaymentReference("does-not-exist", "PRN-abc123")
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestGORMOrderRepository_UpdatePayment(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(setupOrderDB(t))

	order := &models.Order{
		Items:            []models.OrderItem{{ProductID: "p1", Title: "Ring", Price: 500, Qty: 1}},
		Total:            500,
		CustomerName:     "A",
		CustomerEmail:    "a@x.com",
		Status:           models.StatusPending,
		PaymentReference: "PRN-abc123",
	}
	assert.NoError(t, repo.Create(order))

	// Status only: the existing reference survives.
	assert.NoError(t, repo.UpdatePayment(order.ID, models.StatusPaid, ""))
	fetched, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPaid, fetched.Status)
	assert.Equal(t, "PRN-abc123", fetched.PaymentReference)

	// Status plus override: both land in the same update, and a
	// paid order may still flip to failed.
	assert.NoError(t, repo.UpdatePayment(order.ID, models.StatusFailed, "PRN-override"))
	fetched, err = repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusFailed, fetched.Status)
	assert.Equal(t, "PRN-override", fetched.PaymentReference)

	err = repo.UpdatePayment("does-not-exist", models.StatusPaid, "")
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}
