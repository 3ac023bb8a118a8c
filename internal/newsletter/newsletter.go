package newsletter

// Candidate is an unvalidated subscription request.
type Candidate struct {
	Email        string `json:"email" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
}

// Subscription is a recorded newsletter signup. Emails are unique across
// all subscriptions, compared case-sensitively.
type Subscription struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
}
