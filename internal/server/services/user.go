// Package services contains server-side business logic. UserService handles
// signup, signin, token checks and the profile updates made during
// onboarding.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/avarich/internal/common"
	"github.com/dmitrijs2005/avarich/internal/logging"
	"github.com/dmitrijs2005/avarich/internal/server/auth"
	"github.com/dmitrijs2005/avarich/internal/server/config"
	"github.com/dmitrijs2005/avarich/internal/server/models"
	"github.com/dmitrijs2005/avarich/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/avarich/internal/telemetry"
)

// AuthResult is returned by Signup and Signin.
type AuthResult struct {
	Email    string
	Token    string
	UserType models.UserType
}

// UserService provides the account operations exposed by the HTTP API.
type UserService struct {
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	logger      logging.Logger
	tracer      trace.Tracer
}

// NewUserService constructs a UserService using the repositories and the
// token settings from cfg.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return NewUserServiceWithIssuer(m, auth.NewIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration), logger)
}

// NewUserServiceWithIssuer is NewUserService with a caller-built Issuer.
func NewUserServiceWithIssuer(m repomanager.RepositoryManager, issuer *auth.Issuer, logger logging.Logger) *UserService {
	return &UserService{
		repomanager: m,
		issuer:      issuer,
		logger:      logger.With("module", "services.user"),
		tracer:      telemetry.Tracer("avarich/server/services"),
	}
}

// bcryptMaxInput is the number of password bytes bcrypt reads. Longer
// passwords are cut to this length before hashing and comparing.
const bcryptMaxInput = 72

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxInput {
		b = b[:bcryptMaxInput]
	}
	return b
}

// hashPassword is a seam for tests.
var hashPassword = func(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, common.BcryptCost)
}

// Signup registers a new user with the default user type and returns a
// session token. A registered email yields common.ErrorAlreadyExists.
func (s *UserService) Signup(ctx context.Context, email, password string) (_ *AuthResult, err error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Signup")
	defer func() { endSpan(span, err) }()

	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users()

	_, err = repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrorAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := hashPassword(bcryptInput(password))
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		UserType:     models.DefaultUserType,
	}
	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	span.SetAttributes(attribute.String("user.id", user.ID))

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return &AuthResult{Email: user.Email, Token: token, UserType: user.UserType}, nil
}

// Signin checks the credentials and returns a fresh session token. Unknown
// email and wrong password produce the same common.ErrorInvalidCredentials.
func (s *UserService) Signin(ctx context.Context, email, password string) (_ *AuthResult, err error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Signin")
	defer func() { endSpan(span, err) }()

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), bcryptInput(password)) != nil {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &AuthResult{Email: user.Email, Token: token, UserType: user.UserType}, nil
}

// Authenticate verifies a session token. Every failure, expiry included,
// is reported as common.ErrorUnauthorized.
func (s *UserService) Authenticate(token string) (*auth.Claims, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	return claims, nil
}

// GetUser returns the user identified by a token subject.
func (s *UserService) GetUser(ctx context.Context, userID string) (_ *models.User, err error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetUser")
	defer func() { endSpan(span, err) }()

	user, err := s.repomanager.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}

// SetUserType overwrites the user's type. The value is stored as given.
func (s *UserService) SetUserType(ctx context.Context, userID string, userType models.UserType) (_ models.UserType, err error) {
	ctx, span := s.tracer.Start(ctx, "UserService.SetUserType")
	defer func() { endSpan(span, err) }()

	if err = s.repomanager.Users().UpdateUserType(ctx, userID, userType); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("error updating user type: %w", err)
	}
	return userType, nil
}

// SetPersonalInformation replaces the whole personal information record.
// A missing subject is logged and not reported.
func (s *UserService) SetPersonalInformation(ctx context.Context, userID string, info *models.PersonalInformation) (err error) {
	ctx, span := s.tracer.Start(ctx, "UserService.SetPersonalInformation")
	defer func() { endSpan(span, err) }()

	err = s.repomanager.Users().UpdatePersonalInformation(ctx, userID, info)
	return s.blindUpdateResult(ctx, userID, "personal information", err)
}

// SetIncome replaces the whole income record, with the same contract as
// SetPersonalInformation.
func (s *UserService) SetIncome(ctx context.Context, userID string, income *models.Income) (err error) {
	ctx, span := s.tracer.Start(ctx, "UserService.SetIncome")
	defer func() { endSpan(span, err) }()

	err = s.repomanager.Users().UpdateIncome(ctx, userID, income)
	return s.blindUpdateResult(ctx, userID, "income", err)
}

func (s *UserService) blindUpdateResult(ctx context.Context, userID, what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		s.logger.Warn(ctx, what+" update matched no user", "user_id", userID)
		return nil
	}
	return fmt.Errorf("error updating %s: %w", what, err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
