package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a standalone record of one gateway order for a participant's
// registration fee. Status only moves pending -> completed or
// pending -> failed; it never reverses.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HackathonID   primitive.ObjectID `bson:"hackathonId" json:"hackathonId"`
	ParticipantID primitive.ObjectID `bson:"participantId" json:"participantId"`
	Amount        int                `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	Status        PaymentStatus      `bson:"status" json:"status"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	PaymentID     string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	ReceiptID     string             `bson:"receiptId" json:"receiptId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
