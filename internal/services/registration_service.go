package services

import (
	"context"
	"errors"
	"time"

	"github.com/hackbridge/hackathon-backend/internal/apperrors"
	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure RegistrationServiceImpl implements RegistrationService
var _ RegistrationService = (*RegistrationServiceImpl)(nil)

type RegistrationServiceImpl struct {
	hackathonRepo repositories.HackathonRepository
}

func NewRegistrationService(hackathonRepo repositories.HackathonRepository) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{hackathonRepo: hackathonRepo}
}

// Register adds a participant to a hackathon. The duplicate-user scan and the
// append run inside one mutator, so the store serializes them against any
// concurrent registration for the same hackathon.
func (s *RegistrationServiceImpl) Register(ctx context.Context, hackathonID primitive.ObjectID, input RegistrationInput) (*models.RegistrationResult, error) {
	if input.UserID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "userId is required")
	}

	var stored models.Participant
	updated, err := s.hackathonRepo.Update(ctx, hackathonID, func(h *models.Hackathon) error {
		if h.FindParticipantByUserID(input.UserID) != nil {
			return apperrors.Newf(apperrors.KindDuplicateRegistration, "user %s is already registered for this hackathon", input.UserID)
		}

		participant := models.Participant{
			ID:           input.ID,
			UserID:       input.UserID,
			Name:         input.Name,
			Email:        input.Email,
			University:   input.University,
			Status:       models.ParticipantStatusPending,
			RegisteredAt: time.Now(),
		}
		if participant.ID.IsZero() {
			participant.ID = primitive.NewObjectID()
		}
		if h.PaymentRequired {
			participant.PaymentStatus = models.PaymentStatusPending
		} else {
			participant.PaymentStatus = models.PaymentStatusNotRequired
		}

		h.Participants = append(h.Participants, participant)
		stored = participant
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}

	slog.Info("Participant registered", "hackathonId", hackathonID, "userId", input.UserID,
		"paymentStatus", stored.PaymentStatus)

	return &models.RegistrationResult{
		Participant:              &stored,
		HackathonPaymentRequired: updated.PaymentRequired,
		UpiID:                    updated.UpiID,
	}, nil
}

// Withdraw removes a participant by id. An associated payment record is left
// untouched as audit history; refunds are handled outside this system.
func (s *RegistrationServiceImpl) Withdraw(ctx context.Context, hackathonID, participantID primitive.ObjectID) error {
	_, err := s.hackathonRepo.Update(ctx, hackathonID, func(h *models.Hackathon) error {
		for i := range h.Participants {
			if h.Participants[i].ID == participantID {
				h.Participants = append(h.Participants[:i], h.Participants[i+1:]...)
				return nil
			}
		}
		return apperrors.New(apperrors.KindNotFound, "participant not found")
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return err
	}
	slog.Info("Participant withdrawn", "hackathonId", hackathonID, "participantId", participantID)
	return nil
}

// GetParticipants lists a hackathon's participants in registration order
func (s *RegistrationServiceImpl) GetParticipants(ctx context.Context, hackathonID primitive.ObjectID) ([]models.Participant, error) {
	hackathon, err := s.hackathonRepo.FindByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}
	return hackathon.Participants, nil
}
