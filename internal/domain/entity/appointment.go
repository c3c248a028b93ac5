package entity

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentDateLayout is the layout of the stored date attribute.
const AppointmentDateLayout = "2006-01-02"

// Appointment is a booking made by a user with a doctor. After creation only
// Status changes, and only to cancelled.
type Appointment struct {
	ID       string            `json:"$id"`
	DoctorID string            `json:"doctorId"`
	UserID   string            `json:"userId"`
	Name     string            `json:"name"`
	Phone    string            `json:"phone"`
	Date     string            `json:"date"`
	Time     string            `json:"time"`
	Notes    string            `json:"notes,omitempty"`
	Status   AppointmentStatus `json:"status"`

	// Doctor is attached by enrichment; nil when the lookup failed or the
	// appointment has no doctorId.
	Doctor *Doctor `json:"doctor,omitempty"`
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsScheduled checks if appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
