package user

//go:generate mockery --name=Repository -r --case underscore --structname UserRepository --filename user_repository.go --output=./mocks
import (
	"context"
	"time"
)

// User is a person observed from a request's identity headers. Users are
// created lazily: the first write carrying an unknown email inserts a row.
type User struct {
	ID        string    `json:"-" db:"id"`
	Email     string    `json:"email" db:"email"`
	Provider  string    `json:"provider,omitempty" db:"provider"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// Validate returns an error if the user cannot serve as an identity record.
func (u *User) Validate() error {
	if u == nil {
		return ErrNoUserInformation
	}

	if u.Email == "" {
		return InvalidError{Email: u.Email}
	}

	return nil
}

// Repository contains interface of supported methods
type Repository interface {
	Create(ctx context.Context, u *User) (string, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpsertByEmail(ctx context.Context, u *User) (string, error)
}
