package discussion

import (
	"errors"
	"time"

	"github.com/raystack/meridian/core/user"
)

type Comment struct {
	ID           string    `json:"id" db:"id"`
	DiscussionID string    `json:"discussion_id" db:"discussion_id"`
	Body         string    `json:"body" db:"body"`
	Owner        user.User `json:"owner" db:"owner"`
	UpdatedBy    user.User `json:"updated_by" db:"updated_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks emptiness of the required fields
func (c Comment) Validate() error {
	if c.DiscussionID == "" {
		return errors.New("discussion_id cannot be empty")
	}

	if c.Body == "" {
		return errors.New("body cannot be empty")
	}

	return nil
}
