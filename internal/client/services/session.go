// Package services contains application services for the avarich client.
// SessionService keeps the signed-in user, mirrors it into the local cache
// and exposes the auth and onboarding operations to the CLI.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/avarich/internal/client/client"
	"github.com/dmitrijs2005/avarich/internal/client/models"
	"github.com/dmitrijs2005/avarich/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/avarich/internal/dbx"
	"github.com/dmitrijs2005/avarich/internal/logging"
)

// State is the session lifecycle: Loading until the cache has been checked,
// then Authenticated or Unauthenticated.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// ErrNotSignedIn is returned by operations that need a session.
var ErrNotSignedIn = errors.New("not signed in")

// syncedAtKey records when the cached user was last written.
const syncedAtKey = "user_synced_at"

// SessionService is used from a single goroutine.
type SessionService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time

	state State
	user  *models.CachedUser
}

func NewSessionService(c client.Client, db *sql.DB, logger logging.Logger) *SessionService {
	return &SessionService{
		client: c,
		db:     db,
		logger: logger.With("module", "services.session"),
		now:    time.Now,
		state:  StateLoading,
	}
}

func (s *SessionService) State() State { return s.state }

// User returns the current user. After a failed Load it is the stale cached
// copy, while State reports Unauthenticated.
func (s *SessionService) User() *models.CachedUser { return s.user }

// Load reads the cached session and confirms it with the server. Network
// failures and rejected tokens are not told apart: both leave the cache on
// disk untouched and the session Unauthenticated.
func (s *SessionService) Load(ctx context.Context) error {
	var cached models.CachedUser
	found, err := metadata.LoadJSON(ctx, metadata.NewSQLiteRepository(s.db), metadata.SessionKey, &cached)
	if err != nil {
		s.state = StateUnauthenticated
		return fmt.Errorf("cache read error: %w", err)
	}
	if !found || cached.Token == "" {
		s.state = StateUnauthenticated
		return nil
	}

	s.user = &cached

	u, err := s.client.GetUser(ctx, cached.Token)
	if err != nil {
		s.logger.Warn(ctx, "cached session not confirmed", "error", err)
		s.state = StateUnauthenticated
		return fmt.Errorf("fetch user error: %w", err)
	}

	cached.Merge(u)
	if err := s.persist(ctx, &cached); err != nil {
		s.state = StateUnauthenticated
		return err
	}

	s.state = StateAuthenticated
	return nil
}

// SignIn authenticates, fetches the full profile and caches it.
func (s *SessionService) SignIn(ctx context.Context, email, password string) error {
	res, err := s.client.Signin(ctx, email, password)
	if err != nil {
		return err
	}

	u, err := s.client.GetUser(ctx, res.Token)
	if err != nil {
		return fmt.Errorf("fetch user error: %w", err)
	}

	cached := &models.CachedUser{
		User:  models.User{Email: res.Email, UserType: res.UserType},
		Token: res.Token,
	}
	cached.Merge(u)

	return s.establish(ctx, cached)
}

// SignUp registers and caches the new session.
func (s *SessionService) SignUp(ctx context.Context, email, password string) error {
	res, err := s.client.Signup(ctx, email, password)
	if err != nil {
		return err
	}

	return s.establish(ctx, &models.CachedUser{
		User:  models.User{Email: res.Email},
		Token: res.Token,
	})
}

// SignOut erases the local cache.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("cache clear error: %w", err)
	}

	s.user = nil
	s.state = StateUnauthenticated
	return nil
}

// Reachable reports whether the server answers its health check. It does
// not touch the session.
func (s *SessionService) Reachable(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// AssignUserType stores the user type on the server, then in the cache.
func (s *SessionService) AssignUserType(ctx context.Context, userType string) error {
	if err := s.requireSession(); err != nil {
		return err
	}

	got, err := s.client.SetUserType(ctx, s.user.Token, userType)
	if err != nil {
		return err
	}
	if got == "" {
		got = userType
	}

	next := *s.user
	next.UserType = got
	return s.commit(ctx, &next)
}

// UpdatePersonalInformation replaces the personal information record on the
// server, then in the cache.
func (s *SessionService) UpdatePersonalInformation(ctx context.Context, info *models.PersonalInformation) error {
	if err := s.requireSession(); err != nil {
		return err
	}

	if err := s.client.SetPersonalInformation(ctx, s.user.Token, info); err != nil {
		return err
	}

	next := *s.user
	next.PersonalInformation = info
	return s.commit(ctx, &next)
}

// UpdateIncome replaces the income record on the server, then in the cache.
func (s *SessionService) UpdateIncome(ctx context.Context, income *models.Income) error {
	if err := s.requireSession(); err != nil {
		return err
	}

	if err := s.client.SetIncome(ctx, s.user.Token, income); err != nil {
		return err
	}

	next := *s.user
	next.Income = income
	return s.commit(ctx, &next)
}

func (s *SessionService) requireSession() error {
	if s.state != StateAuthenticated || s.user == nil {
		return ErrNotSignedIn
	}
	return nil
}

func (s *SessionService) establish(ctx context.Context, u *models.CachedUser) error {
	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.user = u
	s.state = StateAuthenticated
	return nil
}

func (s *SessionService) commit(ctx context.Context, u *models.CachedUser) error {
	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.user = u
	return nil
}

func (s *SessionService) persist(ctx context.Context, u *models.CachedUser) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := metadata.StoreJSON(ctx, repo, metadata.SessionKey, u); err != nil {
			return err
		}
		return repo.Set(ctx, syncedAtKey, []byte(s.now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return fmt.Errorf("cache write error: %w", err)
	}
	return nil
}
