package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question is the denormalized aggregate. Comments, answer references and the
// vote-direction sets are embedded in the row as jsonb so a single question
// can be served with one read; Answer and Vote records live on their own
// tables and are correlated by id.
type Question struct {
	ID        string    `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title   string                      `json:"title"`
	Content string                      `json:"content"`
	Tags    datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`

	ViewCount int64 `json:"view_count" gorm:"not null;default:0"`
	VoteCount int64 `json:"vote_count" gorm:"not null;default:0"`

	Comments  datatypes.JSONSlice[Comment] `json:"comments" gorm:"type:jsonb;not null;default:'[]'"`
	Answers   datatypes.JSONSlice[string]  `json:"answers" gorm:"type:jsonb;not null;default:'[]'"`
	VoteUps   datatypes.JSONSlice[string]  `json:"vote_ups" gorm:"type:jsonb;not null;default:'[]'"`
	VoteDowns datatypes.JSONSlice[string]  `json:"vote_downs" gorm:"type:jsonb;not null;default:'[]'"`
}

// Comment is owned by the question it is embedded in: it has no id, no table
// and is immutable once appended.
type Comment struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Answer struct {
	ID        string    `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	QuestionID string `json:"question_id" gorm:"index;not null"`
	Content    string `json:"content"`
}

type VoteDirection int8

const (
	VoteUp   VoteDirection = 1
	VoteDown VoteDirection = -1
)

// Vote source types. Only questions are votable today.
const VoteSourceQuestion = "question"

// Vote is a ledger entry: append-only, never updated or deleted. The
// question's vote_count and direction sets are derived from these rows.
type Vote struct {
	ID        string    `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`

	SourceType string        `json:"source_type" gorm:"not null"`
	SourceID   string        `json:"source_id" gorm:"index;not null"`
	Direction  VoteDirection `json:"direction" gorm:"not null"`
}
