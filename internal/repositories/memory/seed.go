package memory

import (
	"time"

	"github.com/hackbridge/hackathon-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedHackathons is the fixed data set the fallback store starts from when
// the durable store never connected. It keeps the API browsable while the
// process runs degraded.
func SeedHackathons() []*models.Hackathon {
	now := time.Now()
	return []*models.Hackathon{
		{
			ID:              primitive.NewObjectID(),
			Title:           "HackBridge Open 2026",
			Description:     "48-hour open-theme hackathon",
			StartDate:       now.AddDate(0, 1, 0),
			EndDate:         now.AddDate(0, 1, 2),
			PaymentRequired: false,
			Participants:    []models.Participant{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              primitive.NewObjectID(),
			Title:           "FinTech Sprint",
			Description:     "Payments and banking track, entry fee applies",
			StartDate:       now.AddDate(0, 2, 0),
			EndDate:         now.AddDate(0, 2, 1),
			PaymentRequired: true,
			UpiID:           "hackbridge@upi",
			Amount:          250,
			Participants:    []models.Participant{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}
