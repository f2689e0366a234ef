package client

import (
	"context"

	"github.com/dmitrijs2005/avarich/internal/client/models"
)

// AuthResponse is the body of a successful signup or signin.
type AuthResponse struct {
	Message  string `json:"message"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	UserType string `json:"userType,omitempty"`
}

type Client interface {
	Signup(ctx context.Context, email, password string) (*AuthResponse, error)
	Signin(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUser(ctx context.Context, token string) (*models.User, error)
	SetUserType(ctx context.Context, token, userType string) (string, error)
	SetPersonalInformation(ctx context.Context, token string, info *models.PersonalInformation) error
	SetIncome(ctx context.Context, token string, income *models.Income) error
	Ping(ctx context.Context) error
}
