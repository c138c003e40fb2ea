package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure HackathonRepository implements the interface
var _ repositories.HackathonRepository = (*HackathonRepository)(nil)

// HackathonRepository is the volatile in-memory mirror of the durable
// hackathon store. It keeps aggregates in insertion order and hands out
// copies, so callers can never mutate stored state except through Update.
// Everything here is lost on process restart.
type HackathonRepository struct {
	mu         sync.RWMutex
	hackathons []*models.Hackathon
	index      map[primitive.ObjectID]int
}

// NewHackathonRepository creates an empty in-memory hackathon store
func NewHackathonRepository() *HackathonRepository {
	return &HackathonRepository{
		hackathons: []*models.Hackathon{},
		index:      make(map[primitive.ObjectID]int),
	}
}

// Seed replaces the store contents with the given hackathons
func (r *HackathonRepository) Seed(hackathons []*models.Hackathon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hackathons = make([]*models.Hackathon, 0, len(hackathons))
	r.index = make(map[primitive.ObjectID]int, len(hackathons))
	for _, h := range hackathons {
		c := cloneHackathon(h)
		r.index[c.ID] = len(r.hackathons)
		r.hackathons = append(r.hackathons, c)
	}
}

// Mirror inserts or replaces the durable store's copy of a hackathon. The
// fallback store calls it after every successful durable operation so the
// mirror holds the last known data set if the process later degrades.
func (r *HackathonRepository) Mirror(h *models.Hackathon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := cloneHackathon(h)
	if i, ok := r.index[c.ID]; ok {
		r.hackathons[i] = c
		return
	}
	r.index[c.ID] = len(r.hackathons)
	r.hackathons = append(r.hackathons, c)
}

// Forget drops a hackathon from the mirror, if present
func (r *HackathonRepository) Forget(id primitive.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return
	}
	r.hackathons = append(r.hackathons[:i], r.hackathons[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.hackathons); j++ {
		r.index[r.hackathons[j].ID] = j
	}
}

// FindByID finds a hackathon by ID
func (r *HackathonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneHackathon(r.hackathons[i]), nil
}

// FindAll retrieves all hackathons in insertion order
func (r *HackathonRepository) FindAll(ctx context.Context) ([]*models.Hackathon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Hackathon, 0, len(r.hackathons))
	for _, h := range r.hackathons {
		out = append(out, cloneHackathon(h))
	}
	return out, nil
}

// Create inserts a new hackathon
func (r *HackathonRepository) Create(ctx context.Context, hackathon *models.Hackathon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hackathon.ID.IsZero() {
		hackathon.ID = primitive.NewObjectID()
	}
	if hackathon.Participants == nil {
		hackathon.Participants = []models.Participant{}
	}
	hackathon.CreatedAt = time.Now()
	hackathon.UpdatedAt = time.Now()
	r.index[hackathon.ID] = len(r.hackathons)
	r.hackathons = append(r.hackathons, cloneHackathon(hackathon))
	return nil
}

// Update applies the mutator under the store lock, which serializes all
// mutations to any aggregate
func (r *HackathonRepository) Update(ctx context.Context, id primitive.ObjectID, mutate repositories.Mutator) (*models.Hackathon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}

	// Mutate a copy so a failing mutator leaves the stored aggregate intact
	working := cloneHackathon(r.hackathons[i])
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now()
	r.hackathons[i] = working
	return cloneHackathon(working), nil
}

// Delete removes a hackathon by ID
func (r *HackathonRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.hackathons = append(r.hackathons[:i], r.hackathons[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.hackathons); j++ {
		r.index[r.hackathons[j].ID] = j
	}
	return nil
}

func cloneHackathon(h *models.Hackathon) *models.Hackathon {
	c := *h
	c.Participants = make([]models.Participant, len(h.Participants))
	for i, p := range h.Participants {
		c.Participants[i] = cloneParticipant(p)
	}
	return &c
}

func cloneParticipant(p models.Participant) models.Participant {
	c := p
	if p.ProjectSubmission != nil {
		s := *p.ProjectSubmission
		if s.Evaluation != nil {
			e := *s.Evaluation
			e.Strengths = append([]string(nil), s.Evaluation.Strengths...)
			e.Improvements = append([]string(nil), s.Evaluation.Improvements...)
			e.Recommendations = append([]string(nil), s.Evaluation.Recommendations...)
			s.Evaluation = &e
		}
		if s.Ranking != nil {
			rk := *s.Ranking
			s.Ranking = &rk
		}
		c.ProjectSubmission = &s
	}
	return c
}
