package fallback

import (
	"context"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"github.com/hackbridge/hackathon-backend/internal/repositories/memory"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure HackathonStore implements the interface
var _ repositories.HackathonRepository = (*HackathonStore)(nil)

// HackathonStore is the sole storage entry point for hackathon aggregates.
// In durable mode it delegates to MongoDB and writes every successful result
// through to the in-memory mirror; when a durable operation fails with a
// connectivity-class error it degrades the whole process to that mirror and
// retries the failed operation there, so the caller sees fallback semantics
// rather than the connectivity error and the mirror serves the last known
// data set.
type HackathonStore struct {
	ctl     *Controller
	durable repositories.HackathonRepository
	mem     *memory.HackathonRepository
}

// NewHackathonStore creates the fallback-wrapped hackathon store. durable
// may be nil when the durable store never connected; the controller must
// then already be in fallback mode.
func NewHackathonStore(ctl *Controller, durable repositories.HackathonRepository, mem *memory.HackathonRepository) *HackathonStore {
	return &HackathonStore{ctl: ctl, durable: durable, mem: mem}
}

func (s *HackathonStore) degraded(op string, err error) {
	slog.Warn("durable hackathon operation failed, degrading", "op", op, "error", err)
	s.ctl.Degrade(err)
}

// FindByID reads a hackathon by ID
func (s *HackathonStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.FindByID(ctx, id)
	}
	h, err := s.durable.FindByID(ctx, id)
	if err != nil && IsConnectivityError(err) {
		s.degraded("FindByID", err)
		return s.mem.FindByID(ctx, id)
	}
	if err == nil {
		s.mem.Mirror(h)
	}
	return h, err
}

// FindAll lists all hackathons
func (s *HackathonStore) FindAll(ctx context.Context) ([]*models.Hackathon, error) {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.FindAll(ctx)
	}
	hs, err := s.durable.FindAll(ctx)
	if err != nil && IsConnectivityError(err) {
		s.degraded("FindAll", err)
		return s.mem.FindAll(ctx)
	}
	if err == nil {
		// The full collection is an authoritative snapshot
		s.mem.Seed(hs)
	}
	return hs, err
}

// Create inserts a hackathon
func (s *HackathonStore) Create(ctx context.Context, hackathon *models.Hackathon) error {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.Create(ctx, hackathon)
	}
	err := s.durable.Create(ctx, hackathon)
	if err != nil && IsConnectivityError(err) {
		s.degraded("Create", err)
		return s.mem.Create(ctx, hackathon)
	}
	if err == nil {
		s.mem.Mirror(hackathon)
	}
	return err
}

// Update applies a mutator to the aggregate. A mutator error (duplicate
// registration, missing participant) is a data error and never degrades.
func (s *HackathonStore) Update(ctx context.Context, id primitive.ObjectID, mutate repositories.Mutator) (*models.Hackathon, error) {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.Update(ctx, id, mutate)
	}
	h, err := s.durable.Update(ctx, id, mutate)
	if err != nil && IsConnectivityError(err) {
		s.degraded("Update", err)
		return s.mem.Update(ctx, id, mutate)
	}
	if err == nil {
		s.mem.Mirror(h)
	}
	return h, err
}

// Delete removes a hackathon
func (s *HackathonStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.ctl.Mode() == ModeFallback {
		return s.mem.Delete(ctx, id)
	}
	err := s.durable.Delete(ctx, id)
	if err != nil && IsConnectivityError(err) {
		s.degraded("Delete", err)
		return s.mem.Delete(ctx, id)
	}
	if err == nil {
		s.mem.Forget(id)
	}
	return err
}
