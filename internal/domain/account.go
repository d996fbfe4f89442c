package domain

import (
	"encoding/json"
	"fmt"
)

type Registration struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Agreement       bool   `json:"agreement"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResult struct {
	UserID string `json:"user_id"`
}

// UnmarshalJSON accepts user_id as either a number or a string.
func (r *SignInResult) UnmarshalJSON(b []byte) error {
	var raw struct {
		UserID any `json:"user_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.UserID.(type) {
	case nil:
		r.UserID = ""
	case float64:
		r.UserID = fmt.Sprintf("%.0f", v)
	default:
		r.UserID = fmt.Sprint(v)
	}
	return nil
}

type Interest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Profile is the second registration step, posted as multipart form data.
type Profile struct {
	Bio          string
	Interests    []int
	ImageName    string
	ImageContent []byte
}
