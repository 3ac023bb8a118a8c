package order

// Line references a catalog product by ID with a requested quantity. The
// reference is deliberately not checked against the catalog at submission
// time; orders are purchase inquiries, not binding transactions.
type Line struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// Candidate is an unvalidated bulk-order submission.
type Candidate struct {
	BusinessName  string  `json:"businessName" validate:"required"`
	ContactPerson string  `json:"contactPerson" validate:"required"`
	Email         string  `json:"email" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	OrderType     string  `json:"orderType" validate:"required"`
	Message       *string `json:"message"`
	Products      []Line  `json:"products" validate:"dive"`
}

// Order is a recorded bulk-order submission. Message is always serialised,
// as null when the submitter omitted it.
type Order struct {
	ID            int     `json:"id"`
	BusinessName  string  `json:"businessName"`
	ContactPerson string  `json:"contactPerson"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	OrderType     string  `json:"orderType"`
	Message       *string `json:"message"`
	Products      []Line  `json:"products"`
}
