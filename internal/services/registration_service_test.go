package services

import (
	"context"
	"testing"

	"github.com/hackbridge/hackathon-backend/internal/apperrors"
	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories/fallback"
	"github.com/hackbridge/hackathon-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestHackathon(t *testing.T, repo *memory.HackathonRepository, paymentRequired bool, upiID string) *models.Hackathon {
	t.Helper()
	h := &models.Hackathon{
		Title:           "Test Hack",
		PaymentRequired: paymentRequired,
		UpiID:           upiID,
		Amount:          500,
	}
	require.NoError(t, repo.Create(context.Background(), h))
	return h
}

func TestRegister_FreeHackathonSetsNotRequired(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	svc := NewRegistrationService(repo)

	result, err := svc.Register(context.Background(), h.ID, RegistrationInput{UserID: "u1", Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusNotRequired, result.Participant.PaymentStatus)
	assert.Equal(t, models.ParticipantStatusPending, result.Participant.Status)
	assert.False(t, result.HackathonPaymentRequired)
	assert.False(t, result.Participant.ID.IsZero())
}

func TestRegister_PaidHackathonReturnsPaymentContext(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, true, "x@bank")
	svc := NewRegistrationService(repo)

	result, err := svc.Register(context.Background(), h.ID, RegistrationInput{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, result.HackathonPaymentRequired)
	assert.Equal(t, "x@bank", result.UpiID)
	assert.Equal(t, models.PaymentStatusPending, result.Participant.PaymentStatus)
}

func TestRegister_DuplicateUserYieldsExactlyOneParticipant(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	svc := NewRegistrationService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, h.ID, RegistrationInput{UserID: "u1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, h.ID, RegistrationInput{UserID: "u1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicateRegistration))

	participants, err := svc.GetParticipants(ctx, h.ID)
	require.NoError(t, err)
	count := 0
	for _, p := range participants {
		if p.UserID == "u1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegister_Validation(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	svc := NewRegistrationService(repo)

	_, err := svc.Register(context.Background(), h.ID, RegistrationInput{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRegister_HackathonNotFound(t *testing.T) {
	svc := NewRegistrationService(memory.NewHackathonRepository())

	_, err := svc.Register(context.Background(), primitive.NewObjectID(), RegistrationInput{UserID: "u1"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestRegister_PreservesRegistrationOrder(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	svc := NewRegistrationService(repo)
	ctx := context.Background()

	for _, u := range []string{"u1", "u2", "u3"} {
		_, err := svc.Register(ctx, h.ID, RegistrationInput{UserID: u})
		require.NoError(t, err)
	}

	participants, err := svc.GetParticipants(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, participants, 3)
	assert.Equal(t, "u1", participants[0].UserID)
	assert.Equal(t, "u3", participants[2].UserID)
}

func TestWithdraw(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	svc := NewRegistrationService(repo)
	ctx := context.Background()

	result, err := svc.Register(ctx, h.ID, RegistrationInput{UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw(ctx, h.ID, result.Participant.ID))

	participants, err := svc.GetParticipants(ctx, h.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)

	err = svc.Withdraw(ctx, h.ID, result.Participant.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	err = svc.Withdraw(ctx, primitive.NewObjectID(), result.Participant.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

// The registration contract must hold unchanged after the storage layer
// degrades to the in-memory fallback.
func TestRegister_ContractHoldsInFallbackMode(t *testing.T) {
	ctx := context.Background()

	// A durable store that lost connectivity after serving one hackathon
	seeded := memory.NewHackathonRepository()
	h := newTestHackathon(t, seeded, true, "x@bank")

	ctl := fallback.NewController(fallback.ModeDurable)
	mem := memory.NewHackathonRepository()
	mem.Seed([]*models.Hackathon{h})
	store := fallback.NewHackathonStore(ctl, &disconnectedRepo{}, mem)
	svc := NewRegistrationService(store)

	result, err := svc.Register(ctx, h.ID, RegistrationInput{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, result.HackathonPaymentRequired)
	assert.Equal(t, "x@bank", result.UpiID)
	assert.Equal(t, models.PaymentStatusPending, result.Participant.PaymentStatus)

	// The mode inspection hook confirms the process is degraded
	assert.Equal(t, fallback.ModeFallback, ctl.Mode())
}
