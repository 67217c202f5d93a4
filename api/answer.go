package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cartabinaria/auth/pkg/httputil"
	"github.com/kataras/muxie"
	"golang.org/x/exp/slog"
	"gorm.io/gorm"

	"github.com/cartabinaria/lighter/store"
	"github.com/cartabinaria/lighter/util"
)

// @Summary		Insert a new answer
// @Description	Insert a new answer under a question
// @Tags			answer
// @Param			id			path	string				true	"Question id"
// @Param			answerReq	body	PostAnswerRequest	true	"Answer data to insert"
// @Produce		json
// @Success		201	{object}	models.Answer
// @Failure		400	{object}	httputil.ApiError
// @Router			/questions/{id}/answers [post]
func PostAnswerHandler(res http.ResponseWriter, req *http.Request) {
	db := util.GetDb()
	qID := muxie.GetParam(res, "id")

	var body PostAnswerRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(res, http.StatusBadRequest, fmt.Sprintf("decode error: %v", err))
		return
	}

	answer, err := store.AddAnswer(req.Context(), db, qID, body.Content)
	if errors.Is(err, store.ErrEmptyContent) {
		httputil.WriteError(res, http.StatusBadRequest, "content is required")
		return
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		httputil.WriteError(res, http.StatusNotFound, "the referenced question does not exist")
		return
	} else if err != nil {
		slog.Error("could not insert the answer", "question", qID, "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the answer")
		return
	}

	httputil.WriteData(res, http.StatusCreated, answer)
}
