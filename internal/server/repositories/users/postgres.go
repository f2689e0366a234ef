package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/avarich/internal/common"
	"github.com/dmitrijs2005/avarich/internal/dbx"
	"github.com/dmitrijs2005/avarich/internal/server/models"
)

// PostgresRepository keeps users in a single table; the nested
// personal_information and income records live in JSONB columns.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, email, password, user_type)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, string(user.UserType)).Scan(&user.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password, user_type, personal_information, income, created_at FROM users
		 WHERE email = $1
		 `
	return r.getUser(ctx, query, email)
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, email, password, user_type, personal_information, income, created_at FROM users
		 WHERE id = $1
		 `
	return r.getUser(ctx, query, id)
}

func (r *PostgresRepository) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	var (
		user     models.User
		userType string
		info     []byte
		income   []byte
	)

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &userType, &info, &income, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.UserType = models.UserType(userType)

	if len(info) > 0 {
		user.PersonalInformation = &models.PersonalInformation{}
		if err := json.Unmarshal(info, user.PersonalInformation); err != nil {
			return nil, fmt.Errorf("decode personal_information: %w", err)
		}
	}
	if len(income) > 0 {
		user.Income = &models.Income{}
		if err := json.Unmarshal(income, user.Income); err != nil {
			return nil, fmt.Errorf("decode income: %w", err)
		}
	}

	return &user, nil
}

func (r *PostgresRepository) UpdateUserType(ctx context.Context, id string, userType models.UserType) error {
	query :=
		`UPDATE users SET user_type = $2
		 WHERE id = $1
		 `
	return r.exec(ctx, query, id, string(userType))
}

func (r *PostgresRepository) UpdatePersonalInformation(ctx context.Context, id string, info *models.PersonalInformation) error {
	doc, err := jsonb(info)
	if err != nil {
		return err
	}
	query :=
		`UPDATE users SET personal_information = $2
		 WHERE id = $1
		 `
	return r.exec(ctx, query, id, doc)
}

func (r *PostgresRepository) UpdateIncome(ctx context.Context, id string, income *models.Income) error {
	doc, err := jsonb(income)
	if err != nil {
		return err
	}
	query :=
		`UPDATE users SET income = $2
		 WHERE id = $1
		 `
	return r.exec(ctx, query, id, doc)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// jsonb encodes a sub-record for a JSONB column; nil clears the column.
func jsonb(v any) (any, error) {
	switch t := v.(type) {
	case *models.PersonalInformation:
		if t == nil {
			return nil, nil
		}
	case *models.Income:
		if t == nil {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return string(b), nil
}
