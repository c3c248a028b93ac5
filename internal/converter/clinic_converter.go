package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity and its doctors to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic, doctors []entity.Doctor) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:       clinic.ID,
		Name:     clinic.Name,
		Address:  clinic.Address,
		Phone:    clinic.Phone,
		IsActive: clinic.IsActive,
		Doctors:  DoctorsToResponses(doctors),
	}
}

// FeedbackToResponse converts a Feedback entity to FeedbackResponse DTO
func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	return &dto.FeedbackResponse{
		ID:             feedback.ID,
		DoctorName:     feedback.DoctorName,
		Specialization: feedback.Specialization,
		Message:        feedback.Message,
	}
}
