package services

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/hackbridge/hackathon-backend/internal/apperrors"
	"github.com/hackbridge/hackathon-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func submitTestProject(t *testing.T, svc SubmissionService, hackathonID, participantID primitive.ObjectID, link string) {
	t.Helper()
	_, err := svc.SubmitProject(context.Background(), hackathonID, participantID, link, "a project")
	require.NoError(t, err)
}

func TestSubmitProject_OverwritesPriorSubmission(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	p := registerTestParticipant(t, repo, h)
	svc := NewSubmissionService(repo, &fakeEvaluator{})
	ctx := context.Background()

	first, err := svc.SubmitProject(ctx, h.ID, p.ID, "https://github.com/u1/one", "first")
	require.NoError(t, err)
	require.NotNil(t, first.ProjectSubmission)

	second, err := svc.SubmitProject(ctx, h.ID, p.ID, "https://github.com/u1/two", "second")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/u1/two", second.ProjectSubmission.GithubLink)
	assert.Equal(t, "second", second.ProjectSubmission.Description)
	assert.Nil(t, second.ProjectSubmission.Evaluation, "resubmission starts fresh")
}

func TestSubmitProject_NotFound(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	svc := NewSubmissionService(repo, &fakeEvaluator{})
	ctx := context.Background()

	_, err := svc.SubmitProject(ctx, primitive.NewObjectID(), primitive.NewObjectID(), "https://github.com/x/y", "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = svc.SubmitProject(ctx, h.ID, primitive.NewObjectID(), "https://github.com/x/y", "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestEvaluateProject_StoresResult(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	p := registerTestParticipant(t, repo, h)
	svc := NewSubmissionService(repo, &fakeEvaluator{score: 80})
	ctx := context.Background()

	submitTestProject(t, svc, h.ID, p.ID, "https://github.com/u1/one")

	evaluation, err := svc.EvaluateProject(ctx, h.ID, p.ID, "judge-1")
	require.NoError(t, err)
	assert.Equal(t, 80, evaluation.Score)
	assert.Equal(t, "judge-1", evaluation.EvaluatedBy)
	assert.Equal(t, 80, evaluation.Metrics.Documentation)
	assert.NotEmpty(t, evaluation.Strengths)

	stored, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, stored.FindParticipant(p.ID).ProjectSubmission.Evaluation.Score)
}

func TestEvaluateProject_SecondEvaluatorOverwrites(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	p := registerTestParticipant(t, repo, h)
	svc := NewSubmissionService(repo, &fakeEvaluator{score: 60})
	ctx := context.Background()

	submitTestProject(t, svc, h.ID, p.ID, "https://github.com/u1/one")

	_, err := svc.EvaluateProject(ctx, h.ID, p.ID, "judge-1")
	require.NoError(t, err)

	second, err := svc.EvaluateProject(ctx, h.ID, p.ID, "judge-2")
	require.NoError(t, err)
	assert.Equal(t, "judge-2", second.EvaluatedBy)

	stored, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "judge-2", stored.FindParticipant(p.ID).ProjectSubmission.Evaluation.EvaluatedBy)
}

func TestEvaluateProject_Errors(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	p := registerTestParticipant(t, repo, h)
	ctx := context.Background()

	// No submission yet
	svc := NewSubmissionService(repo, &fakeEvaluator{})
	_, err := svc.EvaluateProject(ctx, h.ID, p.ID, "judge-1")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	submitTestProject(t, svc, h.ID, p.ID, "https://github.com/u1/one")

	// Unconfigured evaluator fails fast
	unconfigured := NewSubmissionService(repo, &fakeEvaluator{unconfigured: true})
	_, err = unconfigured.EvaluateProject(ctx, h.ID, p.ID, "judge-1")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotConfigured))

	// Evaluation-service failure surfaces as an external error, nothing stored
	failing := NewSubmissionService(repo, &fakeEvaluator{failCalls: true})
	_, err = failing.EvaluateProject(ctx, h.ID, p.ID, "judge-1")
	assert.True(t, apperrors.IsKind(err, apperrors.KindExternalService))

	stored, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.FindParticipant(p.ID).ProjectSubmission.Evaluation)
}

func TestRankProjects_RanksArePermutation(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	reg := NewRegistrationService(repo)
	evaluator := &fakeEvaluator{}
	svc := NewSubmissionService(repo, evaluator)
	ctx := context.Background()

	const submitters = 4
	var submitterIDs []primitive.ObjectID
	for i := 0; i < submitters; i++ {
		result, err := reg.Register(ctx, h.ID, RegistrationInput{UserID: fmt.Sprintf("u%d", i)})
		require.NoError(t, err)
		submitTestProject(t, svc, h.ID, result.Participant.ID, fmt.Sprintf("https://github.com/u%d/p", i))
		submitterIDs = append(submitterIDs, result.Participant.ID)
	}
	// One registered participant without a submission is left out of the pass
	_, err := reg.Register(ctx, h.ID, RegistrationInput{UserID: "lurker"})
	require.NoError(t, err)

	ranked, err := svc.RankProjects(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, ranked, submitters)
	assert.Equal(t, 1, evaluator.rankCalls)

	var ranks []int
	for _, p := range ranked {
		require.NotNil(t, p.ProjectSubmission.Ranking)
		ranks = append(ranks, p.ProjectSubmission.Ranking.Rank)
	}
	sort.Ints(ranks)
	assert.Equal(t, []int{1, 2, 3, 4}, ranks)

	// The fake ranks reverse submission order: the last submitter is best
	stored, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.FindParticipant(submitterIDs[submitters-1]).ProjectSubmission.Ranking.Rank)
	assert.Equal(t, submitters, stored.FindParticipant(submitterIDs[0]).ProjectSubmission.Ranking.Rank)
}

func TestRankProjects_NoSubmissions(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	reg := NewRegistrationService(repo)
	svc := NewSubmissionService(repo, &fakeEvaluator{})
	ctx := context.Background()

	_, err := reg.Register(ctx, h.ID, RegistrationInput{UserID: "u1"})
	require.NoError(t, err)

	_, err = svc.RankProjects(ctx, h.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNoSubmissions))
}

func TestAnalytics(t *testing.T) {
	repo := memory.NewHackathonRepository()
	h := newTestHackathon(t, repo, false, "")
	reg := NewRegistrationService(repo)
	ctx := context.Background()

	register := func(userID, university string) primitive.ObjectID {
		result, err := reg.Register(ctx, h.ID, RegistrationInput{UserID: userID, University: university})
		require.NoError(t, err)
		return result.Participant.ID
	}

	p1 := register("u1", "IIT Delhi")
	p2 := register("u2", "IIT Delhi")
	p3 := register("u3", "NIT Trichy")

	// No submissions evaluated yet
	svc := NewSubmissionService(repo, &fakeEvaluator{score: 80})
	analytics, err := svc.Analytics(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, analytics.ParticipantCount)
	assert.Equal(t, map[string]int{"IIT Delhi": 2, "NIT Trichy": 1}, analytics.Universities)
	assert.Equal(t, 0, analytics.Submissions.Evaluated)
	assert.Equal(t, float64(0), analytics.Submissions.AverageScore)

	// Two evaluated submissions scored 80 and 100, one unevaluated
	submitTestProject(t, svc, h.ID, p1, "https://github.com/u1/p")
	submitTestProject(t, svc, h.ID, p2, "https://github.com/u2/p")
	submitTestProject(t, svc, h.ID, p3, "https://github.com/u3/p")

	_, err = svc.EvaluateProject(ctx, h.ID, p1, "judge-1")
	require.NoError(t, err)
	_, err = NewSubmissionService(repo, &fakeEvaluator{score: 100}).EvaluateProject(ctx, h.ID, p2, "judge-1")
	require.NoError(t, err)

	analytics, err = svc.Analytics(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, analytics.Submissions.Total)
	assert.Equal(t, 2, analytics.Submissions.Evaluated)
	assert.Equal(t, float64(90), analytics.Submissions.AverageScore)
}
