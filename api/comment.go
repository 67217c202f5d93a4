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

// @Summary		Insert a new comment
// @Description	Append a comment to a question
// @Tags			comment
// @Param			id			path	string				true	"Question id"
// @Param			commentReq	body	PostCommentRequest	true	"Comment data to insert"
// @Produce		json
// @Success		200	{object}	nil
// @Failure		400	{object}	httputil.ApiError
// @Router			/questions/{id}/comments [post]
func PostCommentHandler(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
		return
	}
	db := util.GetDb()
	qID := muxie.GetParam(res, "id")

	var body PostCommentRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(res, http.StatusBadRequest, fmt.Sprintf("decode error: %v", err))
		return
	}

	err := store.AddComment(req.Context(), db, qID, body.Content)
	if errors.Is(err, store.ErrEmptyContent) {
		httputil.WriteError(res, http.StatusBadRequest, "content is required")
		return
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		httputil.WriteError(res, http.StatusNotFound, "the referenced question does not exist")
		return
	} else if err != nil {
		slog.Error("could not insert the comment", "question", qID, "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not insert the comment")
		return
	}

	res.WriteHeader(http.StatusOK)
}
