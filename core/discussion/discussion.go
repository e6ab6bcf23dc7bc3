package discussion

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname DiscussionRepository --filename discussion_repository.go --output=./mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raystack/meridian/core/user"
)

// MaxArrayFieldNum is the cap on labels, assets and assignees entries.
const MaxArrayFieldNum = 10

type Repository interface {
	GetAll(ctx context.Context, flt Filter) ([]Discussion, error)
	Create(ctx context.Context, dsc *Discussion) (string, error)
	Get(ctx context.Context, did string) (Discussion, error)
	Patch(ctx context.Context, did string, patch *Patch) error
	GetAllComments(ctx context.Context, did string, flt Filter) ([]Comment, error)
	CreateComment(ctx context.Context, cmt *Comment) (string, error)
	GetComment(ctx context.Context, cid string, did string) (Comment, error)
	UpdateComment(ctx context.Context, cmt *Comment) error
	DeleteComment(ctx context.Context, cid string, did string) error
}

type Discussion struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Type      Type      `json:"type" db:"type"`
	State     State     `json:"state" db:"state"`
	Labels    []string  `json:"labels" db:"labels"`
	Assets    []string  `json:"assets" db:"assets"`
	Assignees []string  `json:"assignees" db:"assignees"`
	Owner     user.User `json:"owner" db:"owner"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks emptiness of the required fields
// and constraints of the array fields
func (d Discussion) Validate() error {
	if d.Title == "" {
		return errors.New("title cannot be empty")
	}

	if d.Body == "" {
		return errors.New("body cannot be empty")
	}

	if !IsTypeStringValid(d.Type.String()) {
		return fmt.Errorf("discussion type is invalid, supported types are: %v", SupportedTypes)
	}

	if d.State != "" && !IsStateStringValid(d.State.String()) {
		return fmt.Errorf("discussion state is invalid, supported states are: %v", SupportedStates)
	}

	return d.ValidateConstraint()
}

// ValidateConstraint checks whether the array fields are within the allowed size.
func (d Discussion) ValidateConstraint() error {
	if len(d.Assets) > MaxArrayFieldNum {
		return fmt.Errorf("assets cannot be more than %d", MaxArrayFieldNum)
	}

	if len(d.Assignees) > MaxArrayFieldNum {
		return fmt.Errorf("assignees cannot be more than %d", MaxArrayFieldNum)
	}

	if len(d.Labels) > MaxArrayFieldNum {
		return fmt.Errorf("labels cannot be more than %d", MaxArrayFieldNum)
	}

	return nil
}
