package dto

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"notblank"`
	Name     string `json:"name" validate:"notblank"`
	Phone    string `json:"phone" validate:"notblank,max=20"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	Time     string `json:"time" validate:"notblank"`                     // Format: HH:MM
	Notes    string `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID       string          `json:"id"`
	DoctorID string          `json:"doctor_id"`
	UserID   string          `json:"user_id"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Notes    string          `json:"notes,omitempty"`
	Status   string          `json:"status"`
	Doctor   *DoctorResponse `json:"doctor,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
