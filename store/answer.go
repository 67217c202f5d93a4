package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cartabinaria/lighter/models"
)

// AddAnswer persists an independent answer record and appends its id to the
// question's reference list. The two writes run inside one transaction, in
// order: an answer is never referenced before it exists, and an unknown
// question id rolls the insert back instead of orphaning the record.
func AddAnswer(ctx context.Context, db *gorm.DB, questionID, content string) (*models.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	answer := models.Answer{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Content:    content,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Question{}).
			Where("id = ?", questionID).
			UpdateColumn("answers", gorm.Expr("answers || ?::jsonb", fmt.Sprintf("%q", answer.ID)))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// AddComment appends an immutable comment to the aggregate's embedded list.
func AddComment(ctx context.Context, db *gorm.DB, questionID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	raw, err := json.Marshal(models.Comment{Content: content, CreatedAt: time.Now()})
	if err != nil {
		return err
	}

	res := db.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", questionID).
		Updates(map[string]any{
			"comments": gorm.Expr("comments || ?::jsonb", string(raw)),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
