package api

import "github.com/cartabinaria/lighter/models"

type CreateQuestionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type PostAnswerRequest struct {
	Content string `json:"content"`
}

type PostCommentRequest struct {
	Content string `json:"content"`
}

type PostVoteRequest struct {
	Vote int8 `json:"vote"`
}

type QuestionWithAnswersResponse struct {
	Question models.Question `json:"question"`
	Answers  []models.Answer `json:"answers"`
}

type VoteResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Vote     int8   `json:"vote"`
}
