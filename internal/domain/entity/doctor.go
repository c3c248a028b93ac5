package entity

import "github.com/shopspring/decimal"

// Doctor is a practitioner listed in the doctors collection.
type Doctor struct {
	ID                string          `json:"$id"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phoneNumber"`
	YearsOfExperience int             `json:"yearsOfExperience"`
	Fees              decimal.Decimal `json:"fees"`
	SpecializationID  string          `json:"specializationId"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	ClinicID          string          `json:"clinicId,omitempty"`
}

// FullName returns "First Last".
func (d *Doctor) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// SpecializationName resolves the catalog name, "N/A" when unknown.
func (d *Doctor) SpecializationName() string {
	if s, ok := LookupSpecialization(d.SpecializationID); ok {
		return s.Name
	}
	return "N/A"
}
