package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure PaymentRepository implements the interface
var _ repositories.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository handles MongoDB operations for payment records
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

// FindByOrderID finds a payment by its gateway order reference
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	filter := bson.M{"orderId": orderID}
	err := r.collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByParticipant retrieves all payments for a participant
func (r *PaymentRepository) FindByParticipant(ctx context.Context, participantID primitive.ObjectID) ([]*models.Payment, error) {
	var payments []*models.Payment
	cursor, err := r.collection.Find(ctx, bson.M{"participantId": participantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, nil
}

// UpdateStatus transitions a payment to a terminal status. The filter matches
// either the pending payment or one already in the target status, so a
// retried transition converges instead of failing.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, orderID string, status models.PaymentStatus, gatewayPaymentID string) (*models.Payment, error) {
	if status != models.PaymentStatusCompleted && status != models.PaymentStatusFailed {
		return nil, fmt.Errorf("invalid target payment status %q", status)
	}

	filter := bson.M{
		"orderId": orderID,
		"status":  bson.M{"$in": []models.PaymentStatus{models.PaymentStatusPending, status}},
	}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"paymentId": gatewayPaymentID,
		"updatedAt": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// Either the order id is unknown or the payment already reached the
		// opposite terminal status.
		existing, findErr := r.FindByOrderID(ctx, orderID)
		if findErr != nil {
			return nil, findErr
		}
		return nil, fmt.Errorf("payment %s is already %s", orderID, existing.Status)
	}
	return r.FindByOrderID(ctx, orderID)
}
