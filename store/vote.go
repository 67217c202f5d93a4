package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cartabinaria/lighter/models"
)

// CastVote appends an entry to the vote ledger and applies the compensating
// aggregate update: a counter increment plus an insert-if-absent of the new
// ledger id into the matching direction set, both in one UPDATE. The ledger
// insert and the aggregate update run inside one transaction, so a vote on
// an unknown question rolls back instead of leaving a dangling ledger entry.
func CastVote(ctx context.Context, db *gorm.DB, questionID string, direction models.VoteDirection) (*models.Vote, error) {
	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, ErrBadDirection
	}

	vote := models.Vote{
		ID:         uuid.NewString(),
		SourceType: models.VoteSourceQuestion,
		SourceID:   questionID,
		Direction:  direction,
	}

	column := "vote_ups"
	if direction == models.VoteDown {
		column = "vote_downs"
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Question{}).
			Where("id = ?", questionID).
			UpdateColumns(map[string]any{
				"vote_count": gorm.Expr("vote_count + ?", int(direction)),
				column: gorm.Expr(
					fmt.Sprintf("CASE WHEN jsonb_exists(%s, ?) THEN %s ELSE %s || ?::jsonb END", column, column, column),
					vote.ID, fmt.Sprintf("%q", vote.ID),
				),
			})
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
	return &vote, nil
}
