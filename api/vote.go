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

	"github.com/cartabinaria/lighter/models"
	"github.com/cartabinaria/lighter/store"
	"github.com/cartabinaria/lighter/util"
)

// @Summary		Insert a vote
// @Description	Cast a new vote on a question
// @Tags			vote
// @Param			id		path	string			true	"Question id"
// @Param			voteReq	body	PostVoteRequest	true	"Vote direction, 1 or -1"
// @Produce		json
// @Success		200	{object}	VoteResponse
// @Failure		400	{object}	httputil.ApiError
// @Router			/questions/{id}/vote [post]
func PostVoteHandler(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		httputil.WriteError(res, http.StatusMethodNotAllowed, "invalid method")
		return
	}
	db := util.GetDb()
	qID := muxie.GetParam(res, "id")

	var body PostVoteRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(res, http.StatusBadRequest, fmt.Sprintf("decode error: %v", err))
		return
	}

	vote, err := store.CastVote(req.Context(), db, qID, models.VoteDirection(body.Vote))
	if errors.Is(err, store.ErrBadDirection) {
		httputil.WriteError(res, http.StatusBadRequest, "the vote value must be either 1 or -1")
		return
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		httputil.WriteError(res, http.StatusNotFound, "the referenced question does not exist")
		return
	} else if err != nil {
		slog.Error("could not cast the vote", "question", qID, "err", err)
		httputil.WriteError(res, http.StatusInternalServerError, "could not cast the vote")
		return
	}

	httputil.WriteData(res, http.StatusOK, VoteResponse{
		ID:       vote.ID,
		Question: vote.SourceID,
		Vote:     int8(vote.Direction),
	})
}
