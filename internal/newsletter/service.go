package newsletter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-pasar/internal/common"
)

const invalidNewsletterMessage = "Invalid newsletter data"

// CodeDuplicateEmail marks the business-rule rejection for an email that is
// already subscribed, distinct from malformed input.
const CodeDuplicateEmail = "DUPLICATE_EMAIL"

// Service validates and records newsletter subscriptions.
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
		return nil, errors.New("newsletter: repository is required")
	}
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	return &Service{repo: cfg.Repo, validate: v}, nil
}

// Subscribe validates the candidate and stores it with the next sequential
// ID. Duplicate emails are rejected without mutating state, under a code
// callers can branch on.
func (s *Service) Subscribe(ctx context.Context, c Candidate) (Subscription, error) {
	if err := s.validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := map[string]string{}
			for _, fe := range fieldErrs {
				details[lowerFirst(fe.Field())] = "is required"
			}
			return Subscription{}, common.ValidationError(invalidNewsletterMessage, details)
		}
		return Subscription{}, fmt.Errorf("validate subscription: %w", err)
	}
	created, err := s.repo.Create(ctx, Subscription{Email: c.Email, BusinessName: c.BusinessName})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return Subscription{}, &common.AppError{
				Code:       CodeDuplicateEmail,
				Message:    invalidNewsletterMessage,
				HTTPStatus: http.StatusBadRequest,
				Err:        err,
				Details:    map[string]string{"email": "already subscribed"},
			}
		}
		return Subscription{}, fmt.Errorf("store subscription: %w", err)
	}
	return created, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
