package repositories

import (
	"context"
	"errors"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mutator mutates a hackathon aggregate in place. Implementations of
// HackathonRepository apply it under a per-aggregate lock so one hackathon's
// read-modify-write cycles do not interleave in-process. Returning an error
// aborts the update without writing.
type Mutator func(h *models.Hackathon) error

// HackathonRepository defines storage operations on the hackathon aggregate
// (the hackathon document plus its embedded participant list)
type HackathonRepository interface {
	// FindByID retrieves a hackathon by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error)

	// FindAll retrieves all hackathons in insertion order
	FindAll(ctx context.Context) ([]*models.Hackathon, error)

	// Create inserts a new hackathon
	Create(ctx context.Context, hackathon *models.Hackathon) error

	// Update applies the mutator to the aggregate identified by id and
	// persists the result. This is the only write path for participant-list
	// mutation.
	Update(ctx context.Context, id primitive.ObjectID, mutate Mutator) (*models.Hackathon, error)

	// Delete removes a hackathon by ID
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PaymentRepository defines storage operations on payment records
type PaymentRepository interface {
	// Create inserts a new payment record
	Create(ctx context.Context, payment *models.Payment) error

	// FindByOrderID retrieves a payment by its gateway order reference
	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)

	// FindByParticipant retrieves all payments for a participant, newest last
	FindByParticipant(ctx context.Context, participantID primitive.ObjectID) ([]*models.Payment, error)

	// UpdateStatus transitions a pending payment to completed or failed and
	// records the gateway payment id. Re-applying an identical terminal
	// transition is a no-op success; conflicting terminal transitions fail.
	UpdateStatus(ctx context.Context, orderID string, status models.PaymentStatus, gatewayPaymentID string) (*models.Payment, error)
}

// ErrNotFound is returned by repositories when the requested document is
// absent. It is storage-neutral: both the MongoDB and the in-memory
// implementations return it, so callers never test driver sentinels.
var ErrNotFound = errors.New("document not found")
