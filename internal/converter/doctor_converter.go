package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                 doctor.ID,
		FirstName:          doctor.FirstName,
		LastName:           doctor.LastName,
		FullName:           doctor.FullName(),
		Email:              doctor.Email,
		PhoneNumber:        doctor.PhoneNumber,
		YearsOfExperience:  doctor.YearsOfExperience,
		Fees:               doctor.Fees,
		SpecializationID:   doctor.SpecializationID,
		SpecializationName: doctor.SpecializationName(),
		ImageURL:           doctor.ImageURL,
		ClinicID:           doctor.ClinicID,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// SpecializationsToResponses converts catalog entries to DTOs
func SpecializationsToResponses(specs []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specs))
	for i, s := range specs {
		responses[i] = dto.SpecializationResponse{ID: s.ID, Name: s.Name, Icon: s.Icon}
	}
	return responses
}
