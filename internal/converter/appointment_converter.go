package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// The doctor is included only when enrichment attached one.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:       appointment.ID,
		DoctorID: appointment.DoctorID,
		UserID:   appointment.UserID,
		Name:     appointment.Name,
		Phone:    appointment.Phone,
		Date:     appointment.Date,
		Time:     appointment.Time,
		Notes:    appointment.Notes,
		Status:   string(appointment.Status),
		Doctor:   DoctorToResponse(appointment.Doctor),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
