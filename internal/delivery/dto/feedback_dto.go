package dto

// Request DTOs

type CreateFeedbackRequest struct {
	DoctorName     string `json:"doctor_name" validate:"notblank"`
	Specialization string `json:"specialization" validate:"notblank"`
	Message        string `json:"message" validate:"notblank,max=2000"`
}

// Response DTOs

type FeedbackResponse struct {
	ID             string `json:"id"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	Message        string `json:"message"`
}
