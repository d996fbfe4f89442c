package account

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/content/mocks"
	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/pkg/errors"
	"github.com/orgball2608/newsportal/pkg/logger"
)

func validRegistration() domain.Registration {
	return domain.Registration{
		FirstName:       "Ada",
		LastName:        "Obi",
		Email:           "ada@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
		Agreement:       true,
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Registration)
		wantMsg string
	}{
		{name: "valid", mutate: func(*domain.Registration) {}},
		{name: "missing first name", mutate: func(r *domain.Registration) { r.FirstName = " " }, wantMsg: "First name is required"},
		{name: "bad email", mutate: func(r *domain.Registration) { r.Email = "nope" }, wantMsg: "Enter a valid email address"},
		{name: "password mismatch", mutate: func(r *domain.Registration) { r.ConfirmPassword = "other" }, wantMsg: "Passwords do not match"},
		{name: "no agreement", mutate: func(r *domain.Registration) { r.Agreement = false }, wantMsg: "You must agree to the terms and policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)
			err := ValidateRegistration(reg)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
			assert.Equal(t, tt.wantMsg, UserMessage(err, FallbackMessage))
		})
	}
}

func TestRegisterStepOneSkipsAPIWhenInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_content.NewMockClient(ctrl)
	svc := NewService(client, logger.Nop())

	reg := validRegistration()
	reg.Agreement = false
	_, err := svc.RegisterStepOne(context.Background(), reg)
	assert.Error(t, err)

	client.EXPECT().RegisterStepOne(gomock.Any(), validRegistration()).
		Return(content.Session{CSRFToken: "tok"}, nil)
	sess, err := svc.RegisterStepOne(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.CSRFToken)
}

func TestSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_content.NewMockClient(ctrl)
	svc := NewService(client, logger.Nop())

	creds := domain.Credentials{Email: "ada@example.com", Password: "pw"}

	client.EXPECT().SignIn(gomock.Any(), creds).
		Return(domain.SignInResult{}, fmt.Errorf("sign in: %w", errors.FromStatus(401, "Invalid credentials")))
	_, err := svc.SignIn(context.Background(), creds)
	assert.Equal(t, "Invalid credentials", UserMessage(err, SignInFallback))

	client.EXPECT().SignIn(gomock.Any(), creds).Return(domain.SignInResult{UserID: "42"}, nil)
	res, err := svc.SignIn(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "42", res.UserID)

	_, err = svc.SignIn(context.Background(), domain.Credentials{})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestCompleteProfileRejectsLargeImage(t *testing.T) {
	svc := NewService(mock_content.NewMockClient(gomock.NewController(t)), logger.Nop())

	err := svc.CompleteProfile(context.Background(), content.Session{}, domain.Profile{
		ImageContent: make([]byte, MaxProfileImage+1),
	})
	assert.Equal(t, "Profile image must be at most 5 MB", UserMessage(err, FallbackMessage))
}

func TestTimelineRequiresUser(t *testing.T) {
	svc := NewService(mock_content.NewMockClient(gomock.NewController(t)), logger.Nop())

	_, err := svc.Timeline(context.Background(), "")
	assert.True(t, errors.IsUnauthorized(err))
}

func TestUserMessageFallback(t *testing.T) {
	assert.Equal(t, FallbackMessage, UserMessage(errors.FromStatus(502, ""), FallbackMessage))
	assert.Equal(t, "", UserMessage(nil, FallbackMessage))
}
