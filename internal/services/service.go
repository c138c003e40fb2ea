package services

import (
	"context"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/pkg/gemini"
	"github.com/hackbridge/hackathon-backend/pkg/razorpay"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HackathonService defines the interface for hackathon CRUD operations
type HackathonService interface {
	// CreateHackathon creates a new hackathon
	CreateHackathon(ctx context.Context, hackathon *models.Hackathon) error

	// GetAllHackathons lists all hackathons
	GetAllHackathons(ctx context.Context) ([]*models.Hackathon, error)

	// GetHackathonByID retrieves a hackathon by its ID
	GetHackathonByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error)

	// DeleteHackathon removes a hackathon and its embedded participants
	DeleteHackathon(ctx context.Context, id primitive.ObjectID) error

	// UpdatePaymentDetails sets the payment flag, UPI id and fee amount
	UpdatePaymentDetails(ctx context.Context, id primitive.ObjectID, paymentRequired bool, upiID string, amount int) (*models.Hackathon, error)
}

// RegistrationInput carries the caller-supplied participant fields
type RegistrationInput struct {
	ID         primitive.ObjectID
	UserID     string
	Name       string
	Email      string
	University string
}

// RegistrationService defines the interface for participant lifecycle operations
type RegistrationService interface {
	// Register adds a participant to a hackathon, enforcing one registration
	// per user per hackathon
	Register(ctx context.Context, hackathonID primitive.ObjectID, input RegistrationInput) (*models.RegistrationResult, error)

	// Withdraw removes a participant from a hackathon
	Withdraw(ctx context.Context, hackathonID, participantID primitive.ObjectID) error

	// GetParticipants lists a hackathon's participants in registration order
	GetParticipants(ctx context.Context, hackathonID primitive.ObjectID) ([]models.Participant, error)
}

// PaymentService defines the interface for the payment flow
type PaymentService interface {
	// CreateOrder creates a gateway order and a pending payment record
	CreateOrder(ctx context.Context, hackathonID, participantID primitive.ObjectID, amount int) (*models.CreateOrderResult, error)

	// VerifyPayment checks the checkout signature and completes the payment
	// and the participant's payment status
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*models.Payment, error)
}

// SubmissionService defines the interface for submissions, evaluation,
// ranking and analytics
type SubmissionService interface {
	// SubmitProject records a project submission, replacing any prior one
	SubmitProject(ctx context.Context, hackathonID, participantID primitive.ObjectID, githubLink, description string) (*models.Participant, error)

	// EvaluateProject scores one submission via the evaluation service
	EvaluateProject(ctx context.Context, hackathonID, participantID primitive.ObjectID, evaluatorID string) (*models.Evaluation, error)

	// RankProjects runs one ranking pass across all submissions
	RankProjects(ctx context.Context, hackathonID primitive.ObjectID) ([]models.Participant, error)

	// Analytics computes the read-side aggregation for a hackathon
	Analytics(ctx context.Context, hackathonID primitive.ObjectID) (*models.HackathonAnalytics, error)
}

// PaymentGateway is the narrow contract this system consumes from the
// payment provider
type PaymentGateway interface {
	Configured() bool
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// ProjectEvaluator is the narrow contract this system consumes from the
// AI evaluation service
type ProjectEvaluator interface {
	Configured() bool
	EvaluateProject(ctx context.Context, description, githubLink string) (*gemini.EvaluationResult, error)
	RankProjects(ctx context.Context, entries []gemini.RankEntry) ([]gemini.RankResult, error)
}
