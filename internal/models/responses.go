package models

// RegistrationResult is returned by the registration service so the caller
// can decide whether to continue into the payment flow.
type RegistrationResult struct {
	Participant              *Participant `json:"participant"`
	HackathonPaymentRequired bool         `json:"hackathonPaymentRequired"`
	UpiID                    string       `json:"upiId,omitempty"`
}

// OrderSummary is the gateway order as exposed to the frontend, with the
// amount converted back to major currency units.
type OrderSummary struct {
	OrderID  string `json:"orderId"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrderResult bundles everything the frontend needs to start a checkout
type CreateOrderResult struct {
	Order   OrderSummary `json:"order"`
	Payment *Payment     `json:"payment"`
	UpiID   string       `json:"upiId,omitempty"`
	KeyID   string       `json:"keyId"`
}

// SubmissionStats summarizes submissions for the analytics endpoint.
// AverageScore is the mean of evaluation scores over evaluated submissions
// only, 0 when none are evaluated.
type SubmissionStats struct {
	Total        int     `json:"total"`
	Evaluated    int     `json:"evaluated"`
	AverageScore float64 `json:"averageScore"`
}

// HackathonAnalytics is the read-side aggregation for one hackathon
type HackathonAnalytics struct {
	ParticipantCount int             `json:"participantCount"`
	Universities     map[string]int  `json:"universities"`
	Submissions      SubmissionStats `json:"submissions"`
}
