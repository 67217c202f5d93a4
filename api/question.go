package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cartabinaria/auth/pkg/httputil"
	"github.com/kataras/muxie"
	"golang.org/x/exp/slog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cartabinaria/lighter/models"
	"github.com/cartabinaria/lighter/store"
	"github.com/cartabinaria/lighter/util"
)

// @Summary		Get a question
// @Description	Given a question ID, return the question aggregate
// @Tags			question
// @Param			id	path	string	true	"Question id"
// @Produce		json
// @Success		200	{object}	models.Question
// @Failure		404	{object}	httputil.ApiError
// @Router			/questions/{id} [get]
func GetQuestionHandler(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
		return
	}
	db := util.GetDb()
	qID := muxie.GetParam(res, "id")

	question, err := store.GetQuestion(req.Context(), db, qID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httputil.WriteError(res, http.StatusNotFound, "question not found")
		return
	} else if err != nil {
		slog.Error("could not fetch question", "id", qID, "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not fetch question")
		return
	}

	httputil.WriteData(res, http.StatusOK, question)
}

// @Summary		Get a question with its answers
// @Description	Given a question ID, return the question and all its answers
// @Tags			question
// @Param			id	path	string	true	"Question id"
// @Produce		json
// @Success		200	{object}	QuestionWithAnswersResponse
// @Failure		404	{object}	httputil.ApiError
// @Router			/questions/{id}/answers [get]
func GetQuestionAnswersHandler(res http.ResponseWriter, req *http.Request) {
	db := util.GetDb()
	qID := muxie.GetParam(res, "id")

	question, answers, err := store.GetQuestionWithAnswers(req.Context(), db, qID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httputil.WriteError(res, http.StatusNotFound, "question not found")
		return
	} else if err != nil {
		slog.Error("could not fetch question with answers", "id", qID, "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not fetch answers")
		return
	}

	httputil.WriteData(res, http.StatusOK, QuestionWithAnswersResponse{
		Question: *question,
		Answers:  answers,
	})
}

// @Summary		List questions
// @Description	List questions, optionally filtered by tags, sorted descending
// @Tags			question
// @Param			tags	query	[]string	false	"match questions holding any of these tags"
// @Param			sort	query	string		false	"sort field: createdAt, viewCount or voteCount"
// @Param			skip	query	int			false	"pagination offset"
// @Param			limit	query	int			false	"pagination limit"
// @Produce		json
// @Success		200	{array}		models.Question
// @Failure		400	{object}	httputil.ApiError
// @Router			/questions [get]
func ListQuestionsHandler(res http.ResponseWriter, req *http.Request) {
	db := util.GetDb()
	query := req.URL.Query()

	opts := store.ListOptions{
		Tags: query["tags"],
		Sort: query.Get("sort"),
	}
	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(res, http.StatusBadRequest, "invalid skip")
			return
		}
		opts.Skip = skip
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(res, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = limit
	}

	questions, err := store.ListQuestions(req.Context(), db, opts)
	if errors.Is(err, store.ErrBadSortField) {
		httputil.WriteError(res, http.StatusBadRequest, "invalid sort field")
		return
	} else if err != nil {
		slog.Error("could not list questions", "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not list questions")
		return
	}

	httputil.WriteData(res, http.StatusOK, questions)
}

// @Summary		Create a question
// @Description	Insert a new question with a generated id
// @Tags			question
// @Param			questionReq	body	CreateQuestionRequest	true	"Question to insert"
// @Produce		json
// @Success		201	{object}	models.Question
// @Failure		400	{object}	httputil.ApiError
// @Router			/questions [post]
func CreateQuestionHandler(res http.ResponseWriter, req *http.Request) {
	db := util.GetDb()

	var body CreateQuestionRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(res, http.StatusBadRequest, fmt.Sprintf("decode error: %v", err))
		return
	}

	question, err := store.CreateQuestion(req.Context(), db, &models.Question{
		Title:   body.Title,
		Content: body.Content,
		Tags:    datatypes.NewJSONSlice(body.Tags),
	})
	if errors.Is(err, store.ErrEmptyTitle) {
		httputil.WriteError(res, http.StatusBadRequest, "title is required")
		return
	} else if err != nil {
		slog.Error("could not create question", "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not create question")
		return
	}

	httputil.WriteData(res, http.StatusCreated, question)
}

// @Summary		Update a question
// @Description	Apply a partial update to a question; the summary is appended as a comment
// @Tags			question
// @Param			id			path	string					true	"Question id"
// @Param			updateReq	body	store.UpdateRequest		true	"Fields to update"
// @Produce		json
// @Success		200	{object}	nil
// @Failure		400	{object}	httputil.ApiError
// @Router			/questions/{id} [patch]
func UpdateQuestionHandler(res http.ResponseWriter, req *http.Request) {
	db := util.GetDb()
	qID := muxie.GetParam(res, "id")

	var body store.UpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(res, http.StatusBadRequest, fmt.Sprintf("decode error: %v", err))
		return
	}

	err := store.UpdateQuestion(req.Context(), db, qID, body)
	if errors.Is(err, store.ErrEmptySummary) {
		httputil.WriteError(res, http.StatusBadRequest, "summary is required")
		return
	} else if err != nil {
		slog.Error("could not update question", "id", qID, "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not update question")
		return
	}

	res.WriteHeader(http.StatusOK)
}
