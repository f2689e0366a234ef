package users

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/avarich/internal/common"
	"github.com/dmitrijs2005/avarich/internal/server/models"
)

func TestInMemory_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	u, err := repo.Create(ctx, &models.User{ID: "u-1", Email: "a@x.io", PasswordHash: "h", UserType: models.DefaultUserType})
	require.NoError(t, err)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := repo.GetUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	got, err = repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", got.Email)

	_, err = repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetUserByEmail(ctx, "missing@x.io")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemory_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	_, err := repo.Create(ctx, &models.User{ID: "u-1", Email: "a@x.io"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{ID: "u-2", Email: "a@x.io"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, 1, repo.Count())
}

func TestInMemory_ConcurrentSignupsSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		oks int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.User{ID: string(rune('a' + i)), Email: "same@x.io"})
			if err == nil {
				mu.Lock()
				oks++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, oks)
	assert.Equal(t, 1, repo.Count())
}

func TestInMemory_UpdatesReplaceWholeRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	_, err := repo.Create(ctx, &models.User{ID: "u-1", Email: "a@x.io", UserType: models.UserTypeStudent})
	require.NoError(t, err)

	name, occ := "Sam", "dev"
	require.NoError(t, repo.UpdatePersonalInformation(ctx, "u-1", &models.PersonalInformation{Name: &name, Occupation: &occ}))
	age := 30
	require.NoError(t, repo.UpdatePersonalInformation(ctx, "u-1", &models.PersonalInformation{Age: &age}))

	got, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, got.PersonalInformation)
	assert.Nil(t, got.PersonalInformation.Name)
	assert.Nil(t, got.PersonalInformation.Occupation)
	assert.Equal(t, 30, *got.PersonalInformation.Age)

	require.NoError(t, repo.UpdateUserType(ctx, "u-1", models.UserTypeEntrepreneur))
	total := 99.0
	require.NoError(t, repo.UpdateIncome(ctx, "u-1", &models.Income{TotalMonthlyIncome: &total}))

	got, err = repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeEntrepreneur, got.UserType)
	assert.Equal(t, 99.0, *got.Income.TotalMonthlyIncome)

	assert.ErrorIs(t, repo.UpdateUserType(ctx, "nope", models.UserTypeStudent), common.ErrorNotFound)
	assert.ErrorIs(t, repo.UpdateIncome(ctx, "nope", nil), common.ErrorNotFound)
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	_, err := repo.Create(ctx, &models.User{ID: "u-1", Email: "a@x.io", UserType: models.UserTypeStudent})
	require.NoError(t, err)

	got, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	got.UserType = models.UserTypeEntrepreneur

	again, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeStudent, again.UserType)
}

func TestInMemory_StoredRecordsAreIndependentCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	_, err := repo.Create(ctx, &models.User{ID: "u-1", Email: "a@x.io", PasswordHash: "h"})
	require.NoError(t, err)

	name, age, earner := "Ann", 30, true
	total, sources := 1200.0, "tutoring"
	info := &models.PersonalInformation{Name: &name, Age: &age, PrimaryIncomeEarner: &earner}
	income := &models.Income{TotalMonthlyIncome: &total, AdditionalIncomeSources: &sources}
	require.NoError(t, repo.UpdatePersonalInformation(ctx, "u-1", info))
	require.NoError(t, repo.UpdateIncome(ctx, "u-1", income))

	name, age, earner = "Bob", 99, false
	total, sources = 0, "none"

	got, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", *got.PersonalInformation.Name)
	assert.Equal(t, 30, *got.PersonalInformation.Age)
	assert.True(t, *got.PersonalInformation.PrimaryIncomeEarner)
	assert.Equal(t, 1200.0, *got.Income.TotalMonthlyIncome)
	assert.Equal(t, "tutoring", *got.Income.AdditionalIncomeSources)

	*got.PersonalInformation.Name = "Eve"
	*got.Income.AdditionalIncomeSources = "changed"

	again, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", *again.PersonalInformation.Name)
	assert.Equal(t, "tutoring", *again.Income.AdditionalIncomeSources)
}
