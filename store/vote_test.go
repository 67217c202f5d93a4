package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cartabinaria/lighter/models"
)

func TestCastVoteBadDirection(t *testing.T) {
	if _, err := CastVote(context.Background(), nil, "whatever", 0); !errors.Is(err, ErrBadDirection) {
		t.Fatalf("expected ErrBadDirection, got %v", err)
	}
}

func TestCastVoteUpThenDown(t *testing.T) {
	db := testDb(t)
	tx := testTx(t, db)
	ctx := context.Background()

	question := seedQuestion(t, tx, "votable")

	up, err := CastVote(ctx, tx, question.ID, models.VoteUp)
	if err != nil {
		t.Fatalf("CastVote up: %v", err)
	}
	down, err := CastVote(ctx, tx, question.ID, models.VoteDown)
	if err != nil {
		t.Fatalf("CastVote down: %v", err)
	}

	got := reloadQuestion(t, tx, question.ID)
	if got.VoteCount != question.VoteCount {
		t.Fatalf("up then down must cancel out, got vote_count %d", got.VoteCount)
	}
	if len(got.VoteUps) != 1 || got.VoteUps[0] != up.ID {
		t.Fatalf("expected vote_ups [%s], got %v", up.ID, got.VoteUps)
	}
	if len(got.VoteDowns) != 1 || got.VoteDowns[0] != down.ID {
		t.Fatalf("expected vote_downs [%s], got %v", down.ID, got.VoteDowns)
	}
}

func TestCastVoteIncrementsCounter(t *testing.T) {
	db := testDb(t)
	tx := testTx(t, db)
	ctx := context.Background()

	question := seedQuestion(t, tx, "votable")

	for i := 0; i < 3; i++ {
		if _, err := CastVote(ctx, tx, question.ID, models.VoteUp); err != nil {
			t.Fatalf("CastVote: %v", err)
		}
	}

	got := reloadQuestion(t, tx, question.ID)
	if got.VoteCount != 3 {
		t.Fatalf("expected vote_count 3, got %d", got.VoteCount)
	}
	if len(got.VoteUps) != 3 {
		t.Fatalf("expected 3 distinct ledger ids in vote_ups, got %v", got.VoteUps)
	}

	var ledger int64
	if err := tx.Model(&models.Vote{}).Where("source_id = ?", question.ID).Count(&ledger).Error; err != nil {
		t.Fatalf("count ledger: %v", err)
	}
	if ledger != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", ledger)
	}
}

func TestCastVoteUnknownQuestion(t *testing.T) {
	db := testDb(t)
	tx := testTx(t, db)
	ctx := context.Background()

	unknown := uuid.NewString()
	if _, err := CastVote(ctx, tx, unknown, models.VoteUp); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	// the rolled-back transaction must not leave a dangling ledger entry
	var ledger int64
	if err := tx.Model(&models.Vote{}).Where("source_id = ?", unknown).Count(&ledger).Error; err != nil {
		t.Fatalf("count ledger: %v", err)
	}
	if ledger != 0 {
		t.Fatalf("expected no ledger entries for unknown question, got %d", ledger)
	}
}
