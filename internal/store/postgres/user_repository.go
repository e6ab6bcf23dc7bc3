package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/raystack/meridian/core/user"
)

// UserRepository is a type that manages user operation to the primary database
type UserRepository struct {
	client *Client
}

// NewUserRepository initializes user repository clients
func NewUserRepository(c *Client) (*UserRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &UserRepository{
		client: c,
	}, nil
}

// Create insert a user to the database, returns error if the email is empty
func (r *UserRepository) Create(ctx context.Context, ud *user.User) (string, error) {
	if ud == nil || ud.Email == "" {
		return "", user.ErrNoUserInformation
	}

	var userID string
	um := newUserModel(ud)
	err := r.client.db.QueryRowxContext(ctx, `
		INSERT INTO
		users
			(email, provider)
		VALUES
			($1, $2)
		RETURNING id
		`, um.Email, um.Provider).Scan(&userID)
	if err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errDuplicateKey) {
			return "", user.DuplicateRecordError{Email: ud.Email}
		}
		return "", err
	}

	if userID == "" {
		return "", fmt.Errorf("error User ID is empty from DB")
	}
	return userID, nil
}

// CreateWithTx insert a user to the database using given transaction as client
func (r *UserRepository) CreateWithTx(ctx context.Context, tx *sqlx.Tx, ud *user.User) (string, error) {
	if ud == nil || ud.Email == "" {
		return "", user.ErrNoUserInformation
	}

	var userID string
	um := newUserModel(ud)
	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO
		users
			(email, provider)
		VALUES
			($1, $2)
		RETURNING id
		`, um.Email, um.Provider).Scan(&userID); err != nil {
		err := checkPostgresError(err)
		if errors.Is(err, errDuplicateKey) {
			return "", user.DuplicateRecordError{Email: ud.Email}
		}
		return "", err
	}
	if userID == "" {
		return "", fmt.Errorf("error User ID is empty from DB")
	}
	return userID, nil
}

// UpsertByEmail inserts a row when the email is new and keeps the
// existing row otherwise, always returning the stored user ID.
func (r *UserRepository) UpsertByEmail(ctx context.Context, ud *user.User) (string, error) {
	if err := ud.Validate(); err != nil {
		return "", err
	}

	var userID string
	um := newUserModel(ud)
	err := r.client.db.QueryRowxContext(ctx, `
		INSERT INTO users (email, provider) VALUES ($1, $2)
		ON CONFLICT (email)
		DO UPDATE SET updated_at = now()
		RETURNING id
		`, um.Email, um.Provider).Scan(&userID)
	if err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, sql.ErrNoRows) {
			return "", user.DuplicateRecordError{Email: ud.Email}
		}
		return "", err
	}

	if userID == "" {
		return "", fmt.Errorf("error User ID is empty from DB")
	}
	return userID, nil
}

// GetByEmail retrieves user given the email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var um UserModel
	if err := r.client.GetContext(ctx, &um, `
		SELECT * FROM users WHERE email = $1
	`, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.NotFoundError{Email: email}
		}
		return user.User{}, err
	}
	return um.toUser(), nil
}

// GetByEmailWithTx retrieves user given the email using given transaction as client
func (r *UserRepository) GetByEmailWithTx(ctx context.Context, tx *sqlx.Tx, email string) (user.User, error) {
	var um UserModel
	if err := tx.GetContext(ctx, &um, `
		SELECT * FROM users WHERE email = $1
	`, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.NotFoundError{Email: email}
		}
		return user.User{}, err
	}
	return um.toUser(), nil
}
