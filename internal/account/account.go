package account

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/pkg/errors"
	"github.com/orgball2608/newsportal/pkg/logger"
)

const (
	MaxProfileImage = 5 << 20

	FallbackMessage = "Something went wrong."
	SignInFallback  = "Login failed."
)

// Service forwards the registration and sign-in forms to the content API.
type Service struct {
	client content.Client
	logger logger.Logger
}

func NewService(client content.Client, log logger.Logger) *Service {
	return &Service{
		client: client,
		logger: log.WithComponent("Account"),
	}
}

func invalid(msg string) error {
	return errors.WrapWithCode(errors.ErrInvalidInput, "validation", msg)
}

// ValidateRegistration checks the first registration step before it is sent.
func ValidateRegistration(reg domain.Registration) error {
	required := []struct {
		name  string
		value string
	}{
		{"First name", reg.FirstName},
		{"Last name", reg.LastName},
		{"Email", reg.Email},
		{"Password", reg.Password},
		{"Confirm password", reg.ConfirmPassword},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return invalid(f.name + " is required")
		}
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return invalid("Enter a valid email address")
	}
	if reg.Password != reg.ConfirmPassword {
		return invalid("Passwords do not match")
	}
	if !reg.Agreement {
		return invalid("You must agree to the terms and policy")
	}
	return nil
}

func ValidateProfile(p domain.Profile) error {
	if len(p.ImageContent) > MaxProfileImage {
		return invalid(fmt.Sprintf("Profile image must be at most %d MB", MaxProfileImage>>20))
	}
	return nil
}

func ValidateCredentials(c domain.Credentials) error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return invalid("Email and password are required")
	}
	return nil
}

func (s *Service) RegisterStepOne(ctx context.Context, reg domain.Registration) (content.Session, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	if err := ValidateRegistration(reg); err != nil {
		return content.Session{}, err
	}
	sess, err := s.client.RegisterStepOne(ctx, reg)
	if err != nil {
		s.logger.Warn("Registration step one failed", "error", err)
		return content.Session{}, err
	}
	s.logger.Info("Registration step one accepted")
	return sess, nil
}

func (s *Service) Interests(ctx context.Context) ([]domain.Interest, error) {
	interests, err := s.client.Interests(ctx)
	if err != nil {
		s.logger.Error("Error fetching interests", "error", err)
		return nil, err
	}
	return interests, nil
}

func (s *Service) CompleteProfile(ctx context.Context, sess content.Session, p domain.Profile) error {
	if err := ValidateProfile(p); err != nil {
		return err
	}
	if err := s.client.RegisterStepTwo(ctx, sess, p); err != nil {
		s.logger.Warn("Registration step two failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) SignIn(ctx context.Context, creds domain.Credentials) (domain.SignInResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := ValidateCredentials(creds); err != nil {
		return domain.SignInResult{}, err
	}
	res, err := s.client.SignIn(ctx, creds)
	if err != nil {
		return domain.SignInResult{}, err
	}
	if res.UserID == "" {
		return domain.SignInResult{}, errors.WrapWithCode(errors.ErrUnauthorized, "no_user", SignInFallback)
	}
	return res, nil
}

func (s *Service) Timeline(ctx context.Context, userID string) ([]domain.TimelineItem, error) {
	if userID == "" {
		return nil, errors.WrapWithCode(errors.ErrUnauthorized, "signed_out", "Sign in to see your news")
	}
	items, err := s.client.MyNews(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load timeline", "user_id", userID, "error", err)
		return nil, err
	}
	return items, nil
}

// UserMessage is the inline text shown for err on a form. Messages coming
// from validation or from the API are shown as is; anything else gets
// fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, errors.ErrInvalidInput),
		errors.IsBadRequest(err),
		errors.IsUnauthorized(err),
		errors.Is(err, errors.ErrForbidden),
		errors.Is(err, errors.ErrTooManyRequests):
		if msg := errors.GetMessage(err); msg != "" {
			return msg
		}
	}
	return fallback
}
