package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateDoctorRequest struct {
	FirstName         string           `json:"first_name" validate:"notblank"`
	LastName          string           `json:"last_name" validate:"notblank"`
	Email             string           `json:"email" validate:"required,email"`
	PhoneNumber       string           `json:"phone_number" validate:"notblank,max=20"`
	YearsOfExperience *int             `json:"years_of_experience" validate:"required,gte=0,lte=80"`
	Fees              *decimal.Decimal `json:"fees" validate:"required"`
	SpecializationID  string           `json:"specialization_id" validate:"required,specialization"`
	ImageURL          string           `json:"image_url" validate:"omitempty,url"`
	ClinicID          string           `json:"clinic_id" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	FirstName         string           `json:"first_name" validate:"omitempty"`
	LastName          string           `json:"last_name" validate:"omitempty"`
	Email             string           `json:"email" validate:"omitempty,email"`
	PhoneNumber       string           `json:"phone_number" validate:"omitempty,max=20"`
	YearsOfExperience *int             `json:"years_of_experience" validate:"omitempty,gte=0,lte=80"`
	Fees              *decimal.Decimal `json:"fees" validate:"omitempty"`
	SpecializationID  string           `json:"specialization_id" validate:"omitempty,specialization"`
	ImageURL          string           `json:"image_url" validate:"omitempty,url"`
	ClinicID          *string          `json:"clinic_id" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID                 string          `json:"id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	FullName           string          `json:"full_name"`
	Email              string          `json:"email"`
	PhoneNumber        string          `json:"phone_number"`
	YearsOfExperience  int             `json:"years_of_experience"`
	Fees               decimal.Decimal `json:"fees"`
	SpecializationID   string          `json:"specialization_id"`
	SpecializationName string          `json:"specialization"`
	ImageURL           string          `json:"image_url,omitempty"`
	ClinicID           string          `json:"clinic_id,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SpecializationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
