package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cartabinaria/lighter/models"
)

// Sort keys exposed to callers, mapped onto their column names. The sort key
// arrives as a caller-supplied string and never reaches the store unmapped.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"viewCount": "view_count",
	"voteCount": "vote_count",
}

// DefaultSort is applied when the caller gives no sort key.
const DefaultSort = "createdAt"

// DefaultLimit is applied when the caller gives no page size.
const DefaultLimit = 10

// GetQuestion returns a single aggregate, bumping its view counter first.
// The increment is a store-side expression so concurrent reads cannot lose
// updates.
func GetQuestion(ctx context.Context, db *gorm.DB, id string) (*models.Question, error) {
	err := db.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return nil, err
	}

	var question models.Question
	if err := db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// GetQuestionWithAnswers correlates the question and answer stores on the
// question id. A question with no answers is still returned, with an empty
// answer list; only a missing question reports not-found.
func GetQuestionWithAnswers(ctx context.Context, db *gorm.DB, id string) (*models.Question, []models.Answer, error) {
	var question models.Question
	if err := db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}

	answers := []models.Answer{}
	err := db.WithContext(ctx).
		Where("question_id = ?", id).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, nil, err
	}
	return &question, answers, nil
}

// ListOptions filters and pages the question listing. An empty Tags slice
// matches every question; Sort defaults to DefaultSort.
type ListOptions struct {
	Tags  []string
	Sort  string
	Skip  int
	Limit int
}

// ListQuestions returns questions holding any of the given tags, sorted
// descending on an allow-listed field.
func ListQuestions(ctx context.Context, db *gorm.DB, opts ListOptions) ([]models.Question, error) {
	sort := opts.Sort
	if sort == "" {
		sort = DefaultSort
	}
	column, ok := sortColumns[sort]
	if !ok {
		return nil, ErrBadSortField
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	skip := opts.Skip
	if skip < 0 {
		skip = 0
	}

	query := db.WithContext(ctx).Model(&models.Question{})
	if len(opts.Tags) > 0 {
		cond := db.Where("jsonb_exists(tags, ?)", opts.Tags[0])
		for _, tag := range opts.Tags[1:] {
			cond = cond.Or("jsonb_exists(tags, ?)", tag)
		}
		query = query.Where(cond)
	}

	questions := []models.Question{}
	err := query.Order(column + " DESC").Offset(skip).Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateQuestion assigns the id and initializes counters and embedded
// collections; the draft only provides title, content and tags.
func CreateQuestion(ctx context.Context, db *gorm.DB, draft *models.Question) (*models.Question, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, ErrEmptyTitle
	}

	question := models.Question{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Content:   draft.Content,
		Tags:      dedupTags(draft.Tags),
		Comments:  datatypes.JSONSlice[models.Comment]{},
		Answers:   datatypes.JSONSlice[string]{},
		VoteUps:   datatypes.JSONSlice[string]{},
		VoteDowns: datatypes.JSONSlice[string]{},
	}
	if err := db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// dedupTags drops repeated tags, keeping first-occurrence order.
func dedupTags(tags []string) datatypes.JSONSlice[string] {
	deduped := datatypes.JSONSlice[string]{}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		deduped = append(deduped, tag)
	}
	return deduped
}
