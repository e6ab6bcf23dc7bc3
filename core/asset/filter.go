package asset

import (
	"time"

	"github.com/raystack/meridian/core/validator"
)

type Filter struct {
	Types         []Type
	Services      []string
	Size          int
	Offset        int
	SortBy        string `validate:"omitempty,oneof=name type service created_at updated_at"`
	SortDirection string `validate:"omitempty,oneof=asc desc"`
	QueryFields   []string
	Query         string
	Data          map[string][]string

	// UpdatedAfter narrows results to assets changed since the given time.
	// Used by the reconciliation sweep to resume from its checkpoint.
	UpdatedAfter time.Time
}

func (f *Filter) Validate() error {
	return validator.ValidateStruct(f)
}
