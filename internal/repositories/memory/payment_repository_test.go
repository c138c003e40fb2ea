package memory

import (
	"context"
	"testing"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPendingPayment(orderID string) *models.Payment {
	return &models.Payment{
		HackathonID:   primitive.NewObjectID(),
		ParticipantID: primitive.NewObjectID(),
		Amount:        500,
		Currency:      "INR",
		Status:        models.PaymentStatusPending,
		OrderID:       orderID,
		ReceiptID:     "rcpt_test",
	}
}

func TestPaymentRepository_CreateAndFindByOrderID(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	p := newPendingPayment("order_1")
	require.NoError(t, repo.Create(ctx, p))
	require.False(t, p.ID.IsZero())

	found, err := repo.FindByOrderID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, found.Status)

	_, err = repo.FindByOrderID(ctx, "order_unknown")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPaymentRepository_UpdateStatusTransitions(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingPayment("order_1")))

	completed, err := repo.UpdateStatus(ctx, "order_1", models.PaymentStatusCompleted, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, completed.Status)
	assert.Equal(t, "pay_123", completed.PaymentID)

	// Re-applying the same terminal transition converges instead of failing
	again, err := repo.UpdateStatus(ctx, "order_1", models.PaymentStatusCompleted, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, again.Status)

	// A conflicting terminal transition is rejected
	_, err = repo.UpdateStatus(ctx, "order_1", models.PaymentStatusFailed, "pay_123")
	assert.Error(t, err)

	// Terminal statuses only
	_, err = repo.UpdateStatus(ctx, "order_1", models.PaymentStatusPending, "")
	assert.Error(t, err)
}

func TestPaymentRepository_FindByParticipant(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	p := newPendingPayment("order_1")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, newPendingPayment("order_2")))

	mine, err := repo.FindByParticipant(ctx, p.ParticipantID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "order_1", mine[0].OrderID)
}
