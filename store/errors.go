package store

import "errors"

// Validation errors: caller mistakes, reported before anything is written.
var (
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptySummary = errors.New("summary is required")
	ErrEmptyContent = errors.New("content is required")
	ErrBadSortField = errors.New("unknown sort field")
	ErrBadDirection = errors.New("vote direction must be up or down")
)
