package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/avarich/internal/common"
	"github.com/dmitrijs2005/avarich/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and by the
// server when it is started with the "memory://" DSN.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.CreatedAt = time.Now().UTC()
	stored := cloneUser(user)
	r.byID[user.ID] = stored
	r.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func (r *InMemoryRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(u), nil
}

func (r *InMemoryRepository) UpdateUserType(ctx context.Context, id string, userType models.UserType) error {
	return r.update(id, func(u *models.User) { u.UserType = userType })
}

func (r *InMemoryRepository) UpdatePersonalInformation(ctx context.Context, id string, info *models.PersonalInformation) error {
	return r.update(id, func(u *models.User) { u.PersonalInformation = clonePersonalInformation(info) })
}

func (r *InMemoryRepository) UpdateIncome(ctx context.Context, id string, income *models.Income) error {
	return r.update(id, func(u *models.User) { u.Income = cloneIncome(income) })
}

// Count returns the number of stored users.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *InMemoryRepository) update(id string, fn func(u *models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	fn(u)
	return nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.PersonalInformation = clonePersonalInformation(u.PersonalInformation)
	c.Income = cloneIncome(u.Income)
	return &c
}

func clonePersonalInformation(p *models.PersonalInformation) *models.PersonalInformation {
	if p == nil {
		return nil
	}
	return &models.PersonalInformation{
		Name:                clonePtr(p.Name),
		Age:                 clonePtr(p.Age),
		Occupation:          clonePtr(p.Occupation),
		FinancialDependents: clonePtr(p.FinancialDependents),
		PrimaryIncomeEarner: clonePtr(p.PrimaryIncomeEarner),
	}
}

func cloneIncome(i *models.Income) *models.Income {
	if i == nil {
		return nil
	}
	return &models.Income{
		TotalMonthlyIncome:      clonePtr(i.TotalMonthlyIncome),
		AdditionalIncomeSources: clonePtr(i.AdditionalIncomeSources),
		SeasonalIncomeChanges:   clonePtr(i.SeasonalIncomeChanges),
	}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
