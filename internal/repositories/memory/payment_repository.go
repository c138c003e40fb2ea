package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure PaymentRepository implements the interface
var _ repositories.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository is the volatile in-memory mirror of the durable payment
// store, keyed by gateway order id
type PaymentRepository struct {
	mu       sync.RWMutex
	payments []*models.Payment
	byOrder  map[string]*models.Payment
}

// NewPaymentRepository creates an empty in-memory payment store
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: []*models.Payment{},
		byOrder:  make(map[string]*models.Payment),
	}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()
	c := *payment
	r.payments = append(r.payments, &c)
	r.byOrder[c.OrderID] = &c
	return nil
}

// Mirror inserts or replaces the durable store's copy of a payment, keyed
// by gateway order id
func (r *PaymentRepository) Mirror(p *models.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	if existing, ok := r.byOrder[c.OrderID]; ok {
		*existing = c
		return
	}
	r.payments = append(r.payments, &c)
	r.byOrder[c.OrderID] = &c
}

// FindByOrderID finds a payment by its gateway order reference
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byOrder[orderID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	c := *p
	return &c, nil
}

// FindByParticipant retrieves all payments for a participant
func (r *PaymentRepository) FindByParticipant(ctx context.Context, participantID primitive.ObjectID) ([]*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*models.Payment{}
	for _, p := range r.payments {
		if p.ParticipantID == participantID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

// UpdateStatus transitions a payment to a terminal status; re-applying the
// same terminal transition is a no-op success
func (r *PaymentRepository) UpdateStatus(ctx context.Context, orderID string, status models.PaymentStatus, gatewayPaymentID string) (*models.Payment, error) {
	if status != models.PaymentStatusCompleted && status != models.PaymentStatusFailed {
		return nil, fmt.Errorf("invalid target payment status %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byOrder[orderID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if p.Status != models.PaymentStatusPending && p.Status != status {
		return nil, fmt.Errorf("payment %s is already %s", orderID, p.Status)
	}
	p.Status = status
	p.PaymentID = gatewayPaymentID
	p.UpdatedAt = time.Now()
	c := *p
	return &c, nil
}
