package fallback

import (
	"context"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"github.com/hackbridge/hackathon-backend/internal/repositories/memory"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PaymentStore implements the interface
var _ repositories.PaymentRepository = (*PaymentStore)(nil)

// PaymentStore wraps the durable payment repository with the same one-way
// fallback behavior and write-through mirroring as HackathonStore. Both
// stores share one Controller, so a connectivity failure on either side
// degrades the whole process.
type PaymentStore struct {
	ctl     *Controller
	durable repositories.PaymentRepository
	mem     *memory.PaymentRepository
}

// NewPaymentStore creates the fallback-wrapped payment store
func NewPaymentStore(ctl *Controller, durable repositories.PaymentRepository, mem *memory.PaymentRepository) *PaymentStore {
	return &PaymentStore{ctl: ctl, durable: durable, mem: mem}
}

func (s *PaymentStore) degraded(op string, err error) {
	slog.Warn("durable payment operation failed, degrading", "op", op, "error", err)
	s.ctl.Degrade(err)
}

// Create inserts a payment record
func (s *PaymentStore) Create(ctx context.Context, payment *models.Payment) error {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.Create(ctx, payment)
	}
	err := s.durable.Create(ctx, payment)
	if err != nil && IsConnectivityError(err) {
		s.degraded("Create", err)
		return s.mem.Create(ctx, payment)
	}
	if err == nil {
		s.mem.Mirror(payment)
	}
	return err
}

// FindByOrderID reads a payment by gateway order reference
func (s *PaymentStore) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.FindByOrderID(ctx, orderID)
	}
	p, err := s.durable.FindByOrderID(ctx, orderID)
	if err != nil && IsConnectivityError(err) {
		s.degraded("FindByOrderID", err)
		return s.mem.FindByOrderID(ctx, orderID)
	}
	if err == nil {
		s.mem.Mirror(p)
	}
	return p, err
}

// FindByParticipant lists a participant's payments
func (s *PaymentStore) FindByParticipant(ctx context.Context, participantID primitive.ObjectID) ([]*models.Payment, error) {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.FindByParticipant(ctx, participantID)
	}
	ps, err := s.durable.FindByParticipant(ctx, participantID)
	if err != nil && IsConnectivityError(err) {
		s.degraded("FindByParticipant", err)
		return s.mem.FindByParticipant(ctx, participantID)
	}
	if err == nil {
		for _, p := range ps {
			s.mem.Mirror(p)
		}
	}
	return ps, err
}

// UpdateStatus transitions a payment to a terminal status
func (s *PaymentStore) UpdateStatus(ctx context.Context, orderID string, status models.PaymentStatus, gatewayPaymentID string) (*models.Payment, error) {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.UpdateStatus(ctx, orderID, status, gatewayPaymentID)
	}
	p, err := s.durable.UpdateStatus(ctx, orderID, status, gatewayPaymentID)
	if err != nil && IsConnectivityError(err) {
		s.degraded("UpdateStatus", err)
		return s.mem.UpdateStatus(ctx, orderID, status, gatewayPaymentID)
	}
	if err == nil {
		s.mem.Mirror(p)
	}
	return p, err
}
