package dto

// Request DTOs

type CreateClinicRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Address string `json:"address" validate:"notblank"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateClinicRequest struct {
	Name     string `json:"name" validate:"omitempty"`
	Address  string `json:"address" validate:"omitempty"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ClinicResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Address  string           `json:"address"`
	Phone    string           `json:"phone,omitempty"`
	IsActive bool             `json:"is_active"`
	Doctors  []DoctorResponse `json:"doctors"`
}

type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}
