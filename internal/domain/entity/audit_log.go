package entity

import "time"

// CollectionAuditLog holds one document per recorded change.
const CollectionAuditLog = "audit_log"

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        string      `json:"$id"`
	UserID    string      `json:"userId,omitempty"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  string      `json:"entityId"`
	OldValue  interface{} `json:"oldValue"`
	NewValue  interface{} `json:"newValue"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Common audit actions
const (
	AuditActionAppointmentBook   = "appointment.book"
	AuditActionAppointmentCancel = "appointment.cancel"
	AuditActionDoctorCreate      = "doctor.create"
	AuditActionDoctorUpdate      = "doctor.update"
	AuditActionDoctorDelete      = "doctor.delete"
	AuditActionClinicCreate      = "clinic.create"
	AuditActionClinicUpdate      = "clinic.update"
	AuditActionClinicDelete      = "clinic.delete"
)
