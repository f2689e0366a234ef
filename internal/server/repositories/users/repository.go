package users

import (
	"context"

	"github.com/dmitrijs2005/avarich/internal/server/models"
)

// Repository is the credential store. Implementations return
// common.ErrorNotFound for a missing user and common.ErrorAlreadyExists when
// Create hits the unique email index.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserType(ctx context.Context, id string, userType models.UserType) error
	UpdatePersonalInformation(ctx context.Context, id string, info *models.PersonalInformation) error
	UpdateIncome(ctx context.Context, id string, income *models.Income) error
}
