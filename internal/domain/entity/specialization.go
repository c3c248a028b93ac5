package entity

import "strings"

// Specialization is an entry of the fixed, non-persisted catalog.
type Specialization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Specializations is the single definition of the catalog.
var Specializations = []Specialization{
	{Name: "Cardiologist", Icon: "heart", ID: "6931563e00352cb0363a"},
	{Name: "Dentist", Icon: "tooth", ID: "6932a38d0023ca5f8e5f"},
	{Name: "Neurologist", Icon: "brain", ID: "6932a418002b9b0b92bb"},
	{Name: "General", Icon: "user-md", ID: "693157aa001878172af0"},
	{Name: "Pediatrician", Icon: "baby", ID: "6932a4a3002963dd6705"},
}

// LookupSpecialization finds a catalog entry by id.
func LookupSpecialization(id string) (Specialization, bool) {
	for _, s := range Specializations {
		if s.ID == id {
			return s, true
		}
	}
	return Specialization{}, false
}

// SearchSpecializations returns entries whose name contains query, ignoring
// case. An empty query returns the whole catalog.
func SearchSpecializations(query string) []Specialization {
	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]Specialization, 0, len(Specializations))
	for _, s := range Specializations {
		if strings.Contains(strings.ToLower(s.Name), q) {
			result = append(result, s)
		}
	}
	return result
}
