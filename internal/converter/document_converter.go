package converter

import (
	"encoding/json"
	"fmt"

	"clinic-booking/internal/domain/entity"
)

// decodeDocument copies the document fields into out through their json tags.
func decodeDocument(doc *entity.Document, out interface{}) error {
	if doc == nil {
		return fmt.Errorf("decode document: nil document")
	}
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("decode %s/%s: %w", doc.Collection, doc.ID, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", doc.Collection, doc.ID, err)
	}
	return nil
}

// DocumentToUserProfile converts a users document to a UserProfile
func DocumentToUserProfile(doc *entity.Document) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := decodeDocument(doc, &profile); err != nil {
		return nil, err
	}
	profile.ID = doc.ID
	return &profile, nil
}

// UserProfileFields builds the users document fields for a profile
func UserProfileFields(profile *entity.UserProfile) map[string]interface{} {
	return map[string]interface{}{
		"userId": profile.UserID,
		"name":   profile.Name,
		"email":  profile.Email,
		"role":   string(profile.Role),
	}
}

// DocumentToDoctor converts a doctors document to a Doctor
func DocumentToDoctor(doc *entity.Document) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := decodeDocument(doc, &doctor); err != nil {
		return nil, err
	}
	doctor.ID = doc.ID
	return &doctor, nil
}

// DocumentsToDoctors converts a slice of doctors documents. A malformed
// document fails the whole conversion.
func DocumentsToDoctors(docs []entity.Document) ([]entity.Doctor, error) {
	doctors := make([]entity.Doctor, 0, len(docs))
	for i := range docs {
		doctor, err := DocumentToDoctor(&docs[i])
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *doctor)
	}
	return doctors, nil
}

// DoctorFields builds the doctors document fields for a doctor
func DoctorFields(doctor *entity.Doctor) map[string]interface{} {
	fields := map[string]interface{}{
		"firstName":         doctor.FirstName,
		"lastName":          doctor.LastName,
		"email":             doctor.Email,
		"phoneNumber":       doctor.PhoneNumber,
		"yearsOfExperience": doctor.YearsOfExperience,
		"fees":              doctor.Fees,
		"specializationId":  doctor.SpecializationID,
		"imageUrl":          nil,
		"clinicId":          nil,
	}
	if doctor.ImageURL != "" {
		fields["imageUrl"] = doctor.ImageURL
	}
	if doctor.ClinicID != "" {
		fields["clinicId"] = doctor.ClinicID
	}
	return fields
}

// DocumentToAppointment converts an appointment document to an Appointment
func DocumentToAppointment(doc *entity.Document) (*entity.Appointment, error) {
	var appointment entity.Appointment
	if err := decodeDocument(doc, &appointment); err != nil {
		return nil, err
	}
	appointment.ID = doc.ID
	appointment.Doctor = nil
	return &appointment, nil
}

// AppointmentFields builds the appointment document fields
func AppointmentFields(appointment *entity.Appointment) map[string]interface{} {
	return map[string]interface{}{
		"doctorId": appointment.DoctorID,
		"userId":   appointment.UserID,
		"name":     appointment.Name,
		"phone":    appointment.Phone,
		"date":     appointment.Date,
		"time":     appointment.Time,
		"notes":    appointment.Notes,
		"status":   string(appointment.Status),
	}
}

// DocumentToClinic converts a clinics document to a Clinic
func DocumentToClinic(doc *entity.Document) (*entity.Clinic, error) {
	var clinic entity.Clinic
	if err := decodeDocument(doc, &clinic); err != nil {
		return nil, err
	}
	clinic.ID = doc.ID
	return &clinic, nil
}

// ClinicFields builds the clinics document fields
func ClinicFields(clinic *entity.Clinic) map[string]interface{} {
	return map[string]interface{}{
		"name":     clinic.Name,
		"address":  clinic.Address,
		"phone":    clinic.Phone,
		"isActive": clinic.IsActive,
	}
}

// DocumentToFeedback converts a feedback document to Feedback
func DocumentToFeedback(doc *entity.Document) (*entity.Feedback, error) {
	var feedback entity.Feedback
	if err := decodeDocument(doc, &feedback); err != nil {
		return nil, err
	}
	feedback.ID = doc.ID
	return &feedback, nil
}

// FeedbackFields builds the feedback document fields
func FeedbackFields(feedback *entity.Feedback) map[string]interface{} {
	return map[string]interface{}{
		"doctorName":     feedback.DoctorName,
		"specialization": feedback.Specialization,
		"message":        feedback.Message,
	}
}
