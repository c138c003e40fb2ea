package services

import (
	"context"
	"errors"

	"github.com/hackbridge/hackathon-backend/internal/apperrors"
	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure HackathonServiceImpl implements HackathonService
var _ HackathonService = (*HackathonServiceImpl)(nil)

type HackathonServiceImpl struct {
	hackathonRepo repositories.HackathonRepository
}

func NewHackathonService(hackathonRepo repositories.HackathonRepository) *HackathonServiceImpl {
	return &HackathonServiceImpl{hackathonRepo: hackathonRepo}
}

// CreateHackathon creates a new hackathon
func (s *HackathonServiceImpl) CreateHackathon(ctx context.Context, hackathon *models.Hackathon) error {
	if hackathon.Title == "" {
		return apperrors.New(apperrors.KindValidation, "title is required")
	}
	if hackathon.PaymentRequired && hackathon.Amount <= 0 {
		return apperrors.New(apperrors.KindValidation, "a paid hackathon needs a positive fee amount")
	}
	if err := s.hackathonRepo.Create(ctx, hackathon); err != nil {
		slog.Error("Failed to create hackathon", "error", err, "title", hackathon.Title)
		return err
	}
	slog.Info("Hackathon created", "id", hackathon.ID, "title", hackathon.Title)
	return nil
}

// GetAllHackathons lists all hackathons
func (s *HackathonServiceImpl) GetAllHackathons(ctx context.Context) ([]*models.Hackathon, error) {
	return s.hackathonRepo.FindAll(ctx)
}

// GetHackathonByID retrieves a hackathon by its ID
func (s *HackathonServiceImpl) GetHackathonByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	hackathon, err := s.hackathonRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}
	return hackathon, nil
}

// DeleteHackathon removes a hackathon. Embedded participants go with the
// document; payment records are kept as audit history.
func (s *HackathonServiceImpl) DeleteHackathon(ctx context.Context, id primitive.ObjectID) error {
	if err := s.hackathonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return err
	}
	slog.Info("Hackathon deleted", "id", id)
	return nil
}

// UpdatePaymentDetails sets the payment flag, UPI id and fee amount
func (s *HackathonServiceImpl) UpdatePaymentDetails(ctx context.Context, id primitive.ObjectID, paymentRequired bool, upiID string, amount int) (*models.Hackathon, error) {
	if paymentRequired && amount <= 0 {
		return nil, apperrors.New(apperrors.KindValidation, "a paid hackathon needs a positive fee amount")
	}
	updated, err := s.hackathonRepo.Update(ctx, id, func(h *models.Hackathon) error {
		h.PaymentRequired = paymentRequired
		h.UpiID = upiID
		h.Amount = amount
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}
	slog.Info("Payment details updated", "id", id, "paymentRequired", paymentRequired)
	return updated, nil
}
