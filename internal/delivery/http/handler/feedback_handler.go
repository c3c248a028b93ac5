package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
)

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
	}
}

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	feedback, err := h.feedbackUsecase.SubmitFeedback(r.Context(), &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to submit feedback")
		return
	}

	response.Success(w, http.StatusCreated, "Feedback submitted successfully", feedback)
}
