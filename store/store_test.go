package store

import (
	"context"
	"os"
	"sync"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/cartabinaria/lighter/models"
)

var (
	dbOnce sync.Once
	testDB *gorm.DB
	dbErr  error
)

// testDb returns a shared database handle for integration tests, skipping
// the test when TEST_POSTGRES_DSN is not set.
func testDb(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			return
		}

		testDB, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr == nil {
			dbErr = testDB.AutoMigrate(&models.Question{}, &models.Answer{}, &models.Vote{})
		}
	})

	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	if testDB == nil {
		tb.Skip("set TEST_POSTGRES_DSN to run store integration tests")
	}
	return testDB
}

// testTx wraps each test in a transaction rolled back on cleanup, so tests
// never leak rows into each other.
func testTx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()

	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func seedQuestion(tb testing.TB, tx *gorm.DB, title string, tags ...string) *models.Question {
	tb.Helper()

	question, err := CreateQuestion(context.Background(), tx, &models.Question{
		Title:   title,
		Content: "some content",
		Tags:    datatypes.NewJSONSlice(tags),
	})
	if err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return question
}

func reloadQuestion(tb testing.TB, tx *gorm.DB, id string) *models.Question {
	tb.Helper()

	var question models.Question
	if err := tx.First(&question, "id = ?", id).Error; err != nil {
		tb.Fatalf("reload question %s: %v", id, err)
	}
	return &question
}
