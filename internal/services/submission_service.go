package services

import (
	"context"
	"errors"
	"time"

	"github.com/hackbridge/hackathon-backend/internal/apperrors"
	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"github.com/hackbridge/hackathon-backend/pkg/gemini"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure SubmissionServiceImpl implements SubmissionService
var _ SubmissionService = (*SubmissionServiceImpl)(nil)

// Compile-time check that the concrete evaluator client satisfies the contract
var _ ProjectEvaluator = (*gemini.Client)(nil)

type SubmissionServiceImpl struct {
	hackathonRepo repositories.HackathonRepository
	evaluator     ProjectEvaluator
}

func NewSubmissionService(hackathonRepo repositories.HackathonRepository, evaluator ProjectEvaluator) *SubmissionServiceImpl {
	return &SubmissionServiceImpl{
		hackathonRepo: hackathonRepo,
		evaluator:     evaluator,
	}
}

// SubmitProject records a project submission on the participant. A prior
// submission is replaced wholesale; no history is kept.
func (s *SubmissionServiceImpl) SubmitProject(ctx context.Context, hackathonID, participantID primitive.ObjectID, githubLink, description string) (*models.Participant, error) {
	if githubLink == "" {
		return nil, apperrors.New(apperrors.KindValidation, "githubLink is required")
	}

	var stored models.Participant
	_, err := s.hackathonRepo.Update(ctx, hackathonID, func(h *models.Hackathon) error {
		participant := h.FindParticipant(participantID)
		if participant == nil {
			return apperrors.New(apperrors.KindNotFound, "participant not found")
		}
		participant.ProjectSubmission = &models.ProjectSubmission{
			GithubLink:     githubLink,
			Description:    description,
			SubmissionDate: time.Now(),
		}
		stored = *participant
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}

	slog.Info("Project submitted", "hackathonId", hackathonID, "participantId", participantID, "githubLink", githubLink)
	return &stored, nil
}

// EvaluateProject scores one submission via the evaluation service and
// stores the result. A prior evaluation is overwritten, including its
// evaluator id.
func (s *SubmissionServiceImpl) EvaluateProject(ctx context.Context, hackathonID, participantID primitive.ObjectID, evaluatorID string) (*models.Evaluation, error) {
	hackathon, err := s.hackathonRepo.FindByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}
	participant := hackathon.FindParticipant(participantID)
	if participant == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "participant not found")
	}
	if participant.ProjectSubmission == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "no project submission to evaluate")
	}
	if !s.evaluator.Configured() {
		return nil, apperrors.New(apperrors.KindNotConfigured, "evaluation service credentials are not configured")
	}

	// The external call runs outside the aggregate lock
	result, err := s.evaluator.EvaluateProject(ctx, participant.ProjectSubmission.Description, participant.ProjectSubmission.GithubLink)
	if err != nil {
		slog.Error("Evaluation service call failed", "error", err, "participantId", participantID)
		return nil, apperrors.Wrap(apperrors.KindExternalService, "evaluation service failed", err)
	}

	evaluation := &models.Evaluation{
		Score: result.Score,
		Metrics: models.EvaluationMetrics{
			Innovation:          result.Metrics.Innovation,
			TechnicalComplexity: result.Metrics.TechnicalComplexity,
			CodeQuality:         result.Metrics.CodeQuality,
			Functionality:       result.Metrics.Functionality,
			Design:              result.Metrics.Design,
			Impact:              result.Metrics.Impact,
			Documentation:       result.Metrics.Documentation,
		},
		Strengths:       result.Strengths,
		Improvements:    result.Improvements,
		Recommendations: result.Recommendations,
		EvaluatedBy:     evaluatorID,
		EvaluatedAt:     time.Now(),
	}

	_, err = s.hackathonRepo.Update(ctx, hackathonID, func(h *models.Hackathon) error {
		p := h.FindParticipant(participantID)
		if p == nil {
			return apperrors.New(apperrors.KindNotFound, "participant not found")
		}
		if p.ProjectSubmission == nil {
			return apperrors.New(apperrors.KindNotFound, "no project submission to evaluate")
		}
		p.ProjectSubmission.Evaluation = evaluation
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}

	slog.Info("Project evaluated", "hackathonId", hackathonID, "participantId", participantID,
		"score", evaluation.Score, "evaluatedBy", evaluatorID)
	return evaluation, nil
}

// RankProjects runs one ranking pass over every submitted project. The
// request list is built in participant order and results are resolved by the
// echoed index into that same list, so duplicate repository links cannot
// cross wires. Rank values are a permutation of 1..N.
func (s *SubmissionServiceImpl) RankProjects(ctx context.Context, hackathonID primitive.ObjectID) ([]models.Participant, error) {
	hackathon, err := s.hackathonRepo.FindByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}

	var entries []gemini.RankEntry
	var submitters []primitive.ObjectID
	for i := range hackathon.Participants {
		p := &hackathon.Participants[i]
		if p.ProjectSubmission == nil {
			continue
		}
		entries = append(entries, gemini.RankEntry{
			Description: p.ProjectSubmission.Description,
			GithubLink:  p.ProjectSubmission.GithubLink,
		})
		submitters = append(submitters, p.ID)
	}
	if len(entries) == 0 {
		return nil, apperrors.New(apperrors.KindNoSubmissions, "no project submissions to rank")
	}
	if !s.evaluator.Configured() {
		return nil, apperrors.New(apperrors.KindNotConfigured, "evaluation service credentials are not configured")
	}

	results, err := s.evaluator.RankProjects(ctx, entries)
	if err != nil {
		slog.Error("Ranking service call failed", "error", err, "hackathonId", hackathonID)
		return nil, apperrors.Wrap(apperrors.KindExternalService, "ranking service failed", err)
	}

	now := time.Now()
	rankings := make(map[primitive.ObjectID]*models.Ranking, len(results))
	for pos, r := range results {
		if r.Index < 0 || r.Index >= len(submitters) {
			return nil, apperrors.Newf(apperrors.KindExternalService, "ranking result index %d out of range", r.Index)
		}
		// Results arrive best first; the rank is the position in that order
		rankings[submitters[r.Index]] = &models.Ranking{
			Rank:     pos + 1,
			Score:    r.Score,
			Feedback: r.Feedback,
			RankedAt: now,
		}
	}
	if len(rankings) != len(submitters) {
		return nil, apperrors.New(apperrors.KindExternalService, "ranking results do not cover every submission exactly once")
	}

	updated, err := s.hackathonRepo.Update(ctx, hackathonID, func(h *models.Hackathon) error {
		for i := range h.Participants {
			p := &h.Participants[i]
			ranking, ok := rankings[p.ID]
			if !ok || p.ProjectSubmission == nil {
				continue
			}
			p.ProjectSubmission.Ranking = ranking
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}

	slog.Info("Ranking pass completed", "hackathonId", hackathonID, "ranked", len(rankings))

	var ranked []models.Participant
	for _, p := range updated.Participants {
		if p.ProjectSubmission != nil && p.ProjectSubmission.Ranking != nil {
			ranked = append(ranked, p)
		}
	}
	return ranked, nil
}

// Analytics computes the read-side aggregation for one hackathon
func (s *SubmissionServiceImpl) Analytics(ctx context.Context, hackathonID primitive.ObjectID) (*models.HackathonAnalytics, error) {
	hackathon, err := s.hackathonRepo.FindByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "hackathon not found")
		}
		return nil, err
	}

	analytics := &models.HackathonAnalytics{
		ParticipantCount: len(hackathon.Participants),
		Universities:     make(map[string]int),
	}

	scoreSum := 0
	for i := range hackathon.Participants {
		p := &hackathon.Participants[i]
		if p.University != "" {
			analytics.Universities[p.University]++
		}
		if p.ProjectSubmission == nil {
			continue
		}
		analytics.Submissions.Total++
		if p.ProjectSubmission.Evaluation != nil {
			analytics.Submissions.Evaluated++
			scoreSum += p.ProjectSubmission.Evaluation.Score
		}
	}
	if analytics.Submissions.Evaluated > 0 {
		analytics.Submissions.AverageScore = float64(scoreSum) / float64(analytics.Submissions.Evaluated)
	}
	return analytics, nil
}
