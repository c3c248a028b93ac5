package usecase

import (
	"context"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/pkg/validator"

	"github.com/sirupsen/logrus"
)

type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackUsecase struct {
	log       *logrus.Logger
	store     repository.DocumentStore
	validator *validator.CustomValidator
}

func NewFeedbackUsecase(log *logrus.Logger, store repository.DocumentStore, validator *validator.CustomValidator) FeedbackUsecase {
	return &feedbackUsecase{
		log:       log,
		store:     store,
		validator: validator,
	}
}

func (u *feedbackUsecase) SubmitFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		DoctorName:     strings.TrimSpace(req.DoctorName),
		Specialization: strings.TrimSpace(req.Specialization),
		Message:        strings.TrimSpace(req.Message),
	}

	doc, err := u.store.CreateDocument(ctx, entity.CollectionFeedback, entity.UniqueID, converter.FeedbackFields(feedback))
	if err != nil {
		u.log.Warnf("Failed to submit feedback: %+v", err)
		return nil, err
	}
	feedback.ID = doc.ID

	return converter.FeedbackToResponse(feedback), nil
}
