package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hackbridge/hackathon-backend/internal/apperrors"
	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"github.com/hackbridge/hackathon-backend/pkg/razorpay"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PaymentServiceImpl implements PaymentService
var _ PaymentService = (*PaymentServiceImpl)(nil)

type PaymentServiceImpl struct {
	hackathonRepo repositories.HackathonRepository
	paymentRepo   repositories.PaymentRepository
	gateway       PaymentGateway
	keyID         string
}

func NewPaymentService(hackathonRepo repositories.HackathonRepository, paymentRepo repositories.PaymentRepository, gateway PaymentGateway, keyID string) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		hackathonRepo: hackathonRepo,
		paymentRepo:   paymentRepo,
		gateway:       gateway,
		keyID:         keyID,
	}
}

// CreateOrder creates a gateway order for a pending registration and
// persists a pending payment record referencing it
func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, hackathonID, participantID primitive.ObjectID, amount int) (*models.CreateOrderResult, error) {
	if amount <= 0 {
		return nil, apperrors.New(apperrors.KindValidation, "amount must be a positive number")
	}

	hackathon, err := s.hackathonRepo.FindByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}
	if hackathon.FindParticipant(participantID) == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "participant not found")
	}
	if !hackathon.PaymentRequired {
		return nil, apperrors.New(apperrors.KindPaymentNotRequired, "this hackathon does not require payment")
	}
	if !s.gateway.Configured() {
		return nil, apperrors.New(apperrors.KindNotConfigured, "payment gateway credentials are not configured")
	}

	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	// Gateway amounts are in minor currency units (paise)
	order, err := s.gateway.CreateOrder(ctx, int64(amount)*100, receipt)
	if err != nil {
		slog.Error("Gateway order creation failed", "error", err, "hackathonId", hackathonID, "participantId", participantID)
		return nil, apperrors.Wrap(apperrors.KindExternalService, "failed to create gateway order", err)
	}

	payment := &models.Payment{
		HackathonID:   hackathonID,
		ParticipantID: participantID,
		Amount:        amount,
		Currency:      "INR",
		Status:        models.PaymentStatusPending,
		OrderID:       order.ID,
		ReceiptID:     receipt,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		slog.Error("Failed to persist payment record", "error", err, "orderId", order.ID)
		return nil, err
	}

	slog.Info("Payment order created", "orderId", order.ID, "amount", amount, "participantId", participantID)

	return &models.CreateOrderResult{
		Order: models.OrderSummary{
			OrderID:  order.ID,
			Amount:   amount,
			Currency: order.Currency,
		},
		Payment: payment,
		UpiID:   hackathon.UpiID,
		KeyID:   s.keyID,
	}, nil
}

// VerifyPayment validates the checkout callback signature and completes the
// payment, then the participant. The two writes are a saga: the payment
// commits first, and a failure before the participant write leaves a
// completed payment with a pending participant. Re-running VerifyPayment
// converges: the payment transition is idempotent and the participant write
// only needs the payment's already-committed state.
func (s *PaymentServiceImpl) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*models.Payment, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, apperrors.New(apperrors.KindValidation, "orderId, paymentId and signature are required")
	}
	if !s.gateway.Configured() {
		return nil, apperrors.New(apperrors.KindNotConfigured, "payment gateway credentials are not configured")
	}

	// Signature check comes before any state mutation
	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		slog.Warn("Payment signature mismatch", "orderId", orderID)
		return nil, apperrors.New(apperrors.KindInvalidSignature, "payment signature verification failed")
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "payment not found")
		}
		return nil, err
	}

	payment, err = s.paymentRepo.UpdateStatus(ctx, orderID, models.PaymentStatusCompleted, paymentID)
	if err != nil {
		return nil, err
	}

	_, err = s.hackathonRepo.Update(ctx, payment.HackathonID, func(h *models.Hackathon) error {
		participant := h.FindParticipant(payment.ParticipantID)
		if participant == nil {
			return apperrors.New(apperrors.KindNotFound, "participant not found")
		}
		participant.PaymentStatus = models.PaymentStatusCompleted
		participant.PaymentID = paymentID
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}

	slog.Info("Payment verified", "orderId", orderID, "paymentId", paymentID, "participantId", payment.ParticipantID)
	return payment, nil
}

// Compile-time check that the concrete gateway client satisfies the contract
var _ PaymentGateway = (*razorpay.Client)(nil)
