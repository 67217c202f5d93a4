package store

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/cartabinaria/lighter/models"
)

// UpdateRequest is a sparse update: absent or blank fields leave the
// aggregate untouched. Summary is mandatory and becomes a new embedded
// comment recording why the question was edited.
type UpdateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
}

// buildUpdates selects the fields to touch. A text field is picked up only
// when non-blank, tags only when non-empty; the summary comment append is
// unconditional.
func buildUpdates(req UpdateRequest, now time.Time) (map[string]any, error) {
	if strings.TrimSpace(req.Summary) == "" {
		return nil, ErrEmptySummary
	}

	updates := map[string]any{}
	if strings.TrimSpace(req.Title) != "" {
		updates["title"] = req.Title
	}
	if strings.TrimSpace(req.Content) != "" {
		updates["content"] = req.Content
	}
	if len(req.Tags) > 0 {
		updates["tags"] = dedupTags(req.Tags)
	}

	comment, err := json.Marshal(models.Comment{Content: req.Summary, CreatedAt: now})
	if err != nil {
		return nil, err
	}
	updates["comments"] = gorm.Expr("comments || ?::jsonb", string(comment))

	return updates, nil
}

// UpdateQuestion applies the composed update as one UPDATE statement, so the
// selected field-sets and the comment append land atomically. An unknown id
// is a silent no-op: nothing matches, nothing is written, no error is
// reported.
func UpdateQuestion(ctx context.Context, db *gorm.DB, id string, req UpdateRequest) error {
	updates, err := buildUpdates(req, time.Now())
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", id).
		Updates(updates).Error
}
