package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParticipantStatus represents the registration status of a participant
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusApproved ParticipantStatus = "approved"
	ParticipantStatusRejected ParticipantStatus = "rejected"
	ParticipantStatusEnrolled ParticipantStatus = "enrolled"
)

// PaymentStatus represents the payment state of a participant or payment record
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusCompleted   PaymentStatus = "completed"
	PaymentStatusFailed      PaymentStatus = "failed"
	PaymentStatusNotRequired PaymentStatus = "not_required"
)

// Hackathon is the aggregate root: the hackathon document together with its
// embedded participant list. Participants have no identity outside their
// parent hackathon and are always read and written as part of this document.
type Hackathon struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	StartDate       time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	PaymentRequired bool               `bson:"paymentRequired" json:"paymentRequired"`
	UpiID           string             `bson:"upiId,omitempty" json:"upiId,omitempty"`
	Amount          int                `bson:"amount,omitempty" json:"amount,omitempty"`
	Participants    []Participant      `bson:"participants" json:"participants"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Participant is an entry in a hackathon's participant list, in registration
// order. UserID is unique within the parent's list.
type Participant struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID            string             `bson:"userId" json:"userId"`
	Name              string             `bson:"name,omitempty" json:"name,omitempty"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty"`
	University        string             `bson:"university,omitempty" json:"university,omitempty"`
	Status            ParticipantStatus  `bson:"status" json:"status"`
	PaymentStatus     PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	PaymentID         string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	ProjectSubmission *ProjectSubmission `bson:"projectSubmission,omitempty" json:"projectSubmission,omitempty"`
	RegisteredAt      time.Time          `bson:"registeredAt" json:"registeredAt"`
}

// FindParticipant returns a pointer into the Participants slice for the given
// participant id, or nil if absent.
func (h *Hackathon) FindParticipant(id primitive.ObjectID) *Participant {
	for i := range h.Participants {
		if h.Participants[i].ID == id {
			return &h.Participants[i]
		}
	}
	return nil
}

// FindParticipantByUserID returns a pointer into the Participants slice for
// the given user id, or nil if absent.
func (h *Hackathon) FindParticipantByUserID(userID string) *Participant {
	for i := range h.Participants {
		if h.Participants[i].UserID == userID {
			return &h.Participants[i]
		}
	}
	return nil
}

// ProjectSubmission is a participant's project entry. A participant holds at
// most one; resubmission replaces it wholesale.
type ProjectSubmission struct {
	GithubLink     string      `bson:"githubLink" json:"githubLink"`
	Description    string      `bson:"description" json:"description"`
	SubmissionDate time.Time   `bson:"submissionDate" json:"submissionDate"`
	Evaluation     *Evaluation `bson:"evaluation,omitempty" json:"evaluation,omitempty"`
	Ranking        *Ranking    `bson:"ranking,omitempty" json:"ranking,omitempty"`
}

// EvaluationMetrics holds the per-criterion scores (0-100 each)
type EvaluationMetrics struct {
	Innovation          int `bson:"innovation" json:"innovation"`
	TechnicalComplexity int `bson:"technicalComplexity" json:"technicalComplexity"`
	CodeQuality         int `bson:"codeQuality" json:"codeQuality"`
	Functionality       int `bson:"functionality" json:"functionality"`
	Design              int `bson:"design" json:"design"`
	Impact              int `bson:"impact" json:"impact"`
	Documentation       int `bson:"documentation" json:"documentation"`
}

// Evaluation is the stored result of one evaluation-service call for a
// submission. Re-evaluating overwrites the previous result.
type Evaluation struct {
	Score           int               `bson:"score" json:"score"`
	Metrics         EvaluationMetrics `bson:"metrics" json:"metrics"`
	Strengths       []string          `bson:"strengths,omitempty" json:"strengths,omitempty"`
	Improvements    []string          `bson:"improvements,omitempty" json:"improvements,omitempty"`
	Recommendations []string          `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
	EvaluatedBy     string            `bson:"evaluatedBy" json:"evaluatedBy"`
	EvaluatedAt     time.Time         `bson:"evaluatedAt" json:"evaluatedAt"`
}

// Ranking is a submission's place from the latest hackathon-wide ranking pass
type Ranking struct {
	Rank     int       `bson:"rank" json:"rank"`
	Score    int       `bson:"score" json:"score"`
	Feedback string    `bson:"feedback,omitempty" json:"feedback,omitempty"`
	RankedAt time.Time `bson:"rankedAt" json:"rankedAt"`
}
