package services

import (
	"context"
	"errors"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"github.com/hackbridge/hackathon-backend/pkg/gemini"
	"github.com/hackbridge/hackathon-backend/pkg/razorpay"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// disconnectedRepo simulates a durable store whose connection dropped: every
// operation times out
type disconnectedRepo struct{}

var _ repositories.HackathonRepository = (*disconnectedRepo)(nil)

func (*disconnectedRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	return nil, context.DeadlineExceeded
}

func (*disconnectedRepo) FindAll(ctx context.Context) ([]*models.Hackathon, error) {
	return nil, context.DeadlineExceeded
}

func (*disconnectedRepo) Create(ctx context.Context, hackathon *models.Hackathon) error {
	return context.DeadlineExceeded
}

func (*disconnectedRepo) Update(ctx context.Context, id primitive.ObjectID, mutate repositories.Mutator) (*models.Hackathon, error) {
	return nil, context.DeadlineExceeded
}

func (*disconnectedRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return context.DeadlineExceeded
}

// fakeGateway is a PaymentGateway stub for the order-creation path
type fakeGateway struct {
	unconfigured bool
	failOrders   bool
	lastAmount   int64
	lastReceipt  string
}

var _ PaymentGateway = (*fakeGateway)(nil)

func (g *fakeGateway) Configured() bool { return !g.unconfigured }

func (g *fakeGateway) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*razorpay.Order, error) {
	if g.failOrders {
		return nil, errors.New("gateway timeout")
	}
	g.lastAmount = amountPaise
	g.lastReceipt = receipt
	return &razorpay.Order{
		ID:       "order_test_1",
		Amount:   amountPaise,
		Currency: "INR",
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == "valid"
}

// fakeEvaluator is a ProjectEvaluator stub. Rankings come back best first in
// reverse submission order, which exercises index resolution.
type fakeEvaluator struct {
	unconfigured bool
	failCalls    bool
	score        int
	rankCalls    int
}

var _ ProjectEvaluator = (*fakeEvaluator)(nil)

func (e *fakeEvaluator) Configured() bool { return !e.unconfigured }

func (e *fakeEvaluator) EvaluateProject(ctx context.Context, description, githubLink string) (*gemini.EvaluationResult, error) {
	if e.failCalls {
		return nil, errors.New("model unavailable")
	}
	score := e.score
	if score == 0 {
		score = 75
	}
	return &gemini.EvaluationResult{
		Score: score,
		Metrics: gemini.Metrics{
			Innovation:          score,
			TechnicalComplexity: score,
			CodeQuality:         score,
			Functionality:       score,
			Design:              score,
			Impact:              score,
			Documentation:       score,
		},
		Strengths:       []string{"clear scope"},
		Improvements:    []string{"add tests"},
		Recommendations: []string{"write a README"},
	}, nil
}

func (e *fakeEvaluator) RankProjects(ctx context.Context, entries []gemini.RankEntry) ([]gemini.RankResult, error) {
	if e.failCalls {
		return nil, errors.New("model unavailable")
	}
	e.rankCalls++
	results := make([]gemini.RankResult, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		results = append(results, gemini.RankResult{
			Index:    i,
			Score:    50 + i,
			Feedback: "solid work",
		})
	}
	return results, nil
}
