package mongodb

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure HackathonRepository implements the interface
var _ repositories.HackathonRepository = (*HackathonRepository)(nil)

// HackathonRepository handles MongoDB operations for the hackathon aggregate
type HackathonRepository struct {
	collection *mongo.Collection

	// one mutex per aggregate id, so concurrent mutator updates on the same
	// hackathon serialize in-process instead of losing writes
	locksMu sync.Mutex
	locks   map[primitive.ObjectID]*sync.Mutex
}

// NewHackathonRepository creates a new HackathonRepository
func NewHackathonRepository(db *mongo.Database) *HackathonRepository {
	return &HackathonRepository{
		collection: db.Collection("hackathons"),
		locks:      make(map[primitive.ObjectID]*sync.Mutex),
	}
}

func (r *HackathonRepository) lockFor(id primitive.ObjectID) *sync.Mutex {
	r.locksMu.Lock()
	defer r.locksMu.Unlock()
	mu, ok := r.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		r.locks[id] = mu
	}
	return mu
}

// releaseLock drops a deleted aggregate's mutex so the map does not grow for
// the process lifetime
func (r *HackathonRepository) releaseLock(id primitive.ObjectID) {
	r.locksMu.Lock()
	defer r.locksMu.Unlock()
	delete(r.locks, id)
}

// FindByID finds a hackathon by ID
func (r *HackathonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&hackathon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &hackathon, nil
}

// FindAll retrieves all hackathons
func (r *HackathonRepository) FindAll(ctx context.Context) ([]*models.Hackathon, error) {
	var hackathons []*models.Hackathon
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &hackathons); err != nil {
		return nil, err
	}
	if hackathons == nil {
		hackathons = []*models.Hackathon{}
	}
	return hackathons, nil
}

// Create inserts a new hackathon
func (r *HackathonRepository) Create(ctx context.Context, hackathon *models.Hackathon) error {
	if hackathon.ID.IsZero() {
		hackathon.ID = primitive.NewObjectID()
	}
	if hackathon.Participants == nil {
		hackathon.Participants = []models.Participant{}
	}
	hackathon.CreatedAt = time.Now()
	hackathon.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, hackathon)
	return err
}

// Update loads the aggregate, applies the mutator and writes the whole
// document back, all under the aggregate's lock
func (r *HackathonRepository) Update(ctx context.Context, id primitive.ObjectID, mutate repositories.Mutator) (*models.Hackathon, error) {
	mu := r.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	hackathon, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mutate(hackathon); err != nil {
		return nil, err
	}

	hackathon.UpdatedAt = time.Now()
	filter := bson.M{"_id": id}
	result, err := r.collection.ReplaceOne(ctx, filter, hackathon)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, repositories.ErrNotFound
	}
	return hackathon, nil
}

// Delete deletes a hackathon by ID
func (r *HackathonRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	r.releaseLock(id)
	return nil
}
