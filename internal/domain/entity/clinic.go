package entity

// Clinic is a location doctors can be attached to through Doctor.ClinicID.
type Clinic struct {
	ID       string `json:"$id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Feedback is a free-text review a user leaves about a doctor.
type Feedback struct {
	ID             string `json:"$id"`
	DoctorName     string `json:"doctorName"`
	Specialization string `json:"specialization"`
	Message        string `json:"message"`
}
