package discussion

import (
	"fmt"
)

// Patch carries a partial discussion update. A nil field means the
// field is untouched; a non-nil field replaces the stored value,
// including the array fields. The discussion type is fixed at creation
// and cannot be patched.
type Patch struct {
	Title     *string   `json:"title"`
	Body      *string   `json:"body"`
	State     *string   `json:"state"`
	Labels    *[]string `json:"labels"`
	Assets    *[]string `json:"assets"`
	Assignees *[]string `json:"assignees"`
}

// Empty returns true if nothing would be changed by the patch.
func (p Patch) Empty() bool {
	return p.Title == nil &&
		p.Body == nil &&
		p.State == nil &&
		p.Labels == nil &&
		p.Assets == nil &&
		p.Assignees == nil
}

// Validate checks enum values and array size constraints of the
// fields present in the patch.
func (p Patch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if p.Body != nil && *p.Body == "" {
		return fmt.Errorf("body cannot be empty")
	}

	if p.State != nil && !IsStateStringValid(*p.State) {
		return fmt.Errorf("discussion state is invalid, supported states are: %v", SupportedStates)
	}

	if p.Labels != nil && len(*p.Labels) > MaxArrayFieldNum {
		return fmt.Errorf("labels cannot be more than %d", MaxArrayFieldNum)
	}

	if p.Assets != nil && len(*p.Assets) > MaxArrayFieldNum {
		return fmt.Errorf("assets cannot be more than %d", MaxArrayFieldNum)
	}

	if p.Assignees != nil && len(*p.Assignees) > MaxArrayFieldNum {
		return fmt.Errorf("assignees cannot be more than %d", MaxArrayFieldNum)
	}

	return nil
}

// Apply overwrites the discussion fields the patch carries.
func (p Patch) Apply(d *Discussion) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Body != nil {
		d.Body = *p.Body
	}
	if p.State != nil {
		d.State = GetStateEnum(*p.State)
	}
	if p.Labels != nil {
		d.Labels = *p.Labels
	}
	if p.Assets != nil {
		d.Assets = *p.Assets
	}
	if p.Assignees != nil {
		d.Assignees = *p.Assignees
	}
}
