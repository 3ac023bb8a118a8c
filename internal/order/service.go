package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-pasar/internal/common"
)

const invalidOrderMessage = "Invalid order data"

// Service validates and records bulk-order submissions.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Repo     Repository
	Validate *validator.Validate
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Repo == nil {
		return nil, errors.New("order: repository is required")
	}
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	return &Service{repo: cfg.Repo, validate: v}, nil
}

// Submit validates the candidate and, on success, stores it under the next
// sequential ID. Validation failures leave the store and its counter
// untouched.
func (s *Service) Submit(ctx context.Context, c Candidate) (Order, error) {
	if err := s.validateCandidate(c); err != nil {
		return Order{}, err
	}
	products := make([]Line, len(c.Products))
	copy(products, c.Products)
	created, err := s.repo.Create(ctx, Order{
		BusinessName:  c.BusinessName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		OrderType:     c.OrderType,
		Message:       c.Message,
		Products:      products,
	})
	if err != nil {
		return Order{}, fmt.Errorf("store order: %w", err)
	}
	return created, nil
}

func (s *Service) validateCandidate(c Candidate) error {
	details := map[string]string{}
	if c.Products == nil {
		details["products"] = "is required"
	}
	if err := s.validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				details[fieldName(fe)] = fieldReason(fe)
			}
		} else {
			return fmt.Errorf("validate order: %w", err)
		}
	}
	if len(details) > 0 {
		return common.ValidationError(invalidOrderMessage, details)
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	// Namespace is like "Candidate.Products[0].Quantity"; drop the root and
	// report JSON-style segment names.
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	for i, seg := range segments {
		segments[i] = lowerFirst(seg)
	}
	return strings.Join(segments, ".")
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
