package entity

import "testing"

func TestSearchSpecializations(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Cardiologist", "Dentist", "Neurologist", "General", "Pediatrician"}},
		{"  DENT ", []string{"Dentist"}},
		{"olog", []string{"Cardiologist", "Neurologist"}},
		{"surgeon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := SearchSpecializations(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(got))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("result %d: expected %s, got %s", i, name, got[i].Name)
				}
			}
		})
	}
}

func TestDoctorSpecializationName(t *testing.T) {
	known := &Doctor{SpecializationID: "6931563e00352cb0363a"}
	unknown := &Doctor{SpecializationID: "missing"}

	if got := known.SpecializationName(); got != "Cardiologist" {
		t.Errorf("expected Cardiologist, got %s", got)
	}
	if got := unknown.SpecializationName(); got != "N/A" {
		t.Errorf("expected N/A, got %s", got)
	}
}

func TestDoctorFullName(t *testing.T) {
	if got := (&Doctor{FirstName: "Rina", LastName: "Putri"}).FullName(); got != "Rina Putri" {
		t.Errorf("unexpected full name %q", got)
	}
	if got := (&Doctor{FirstName: "Rina"}).FullName(); got != "Rina" {
		t.Errorf("unexpected full name %q", got)
	}
}

func TestDocumentString(t *testing.T) {
	doc := &Document{Data: JSON{"userId": "u1", "count": 3}}

	if got := doc.String("userId"); got != "u1" {
		t.Errorf("expected u1, got %q", got)
	}
	if got := doc.String("count"); got != "" {
		t.Errorf("expected empty for a non-string field, got %q", got)
	}
	var nilDoc *Document
	if got := nilDoc.String("userId"); got != "" {
		t.Errorf("expected empty for a nil document, got %q", got)
	}
}

func TestJSONScan(t *testing.T) {
	var j JSON
	if err := j.Scan([]byte(`{"status":"scheduled"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j["status"] != "scheduled" {
		t.Errorf("unexpected data %v", j)
	}

	if err := j.Scan(nil); err != nil || j != nil {
		t.Errorf("expected nil data for a NULL column, got %v (%v)", j, err)
	}
	if err := j.Scan(42); err == nil {
		t.Error("expected an error for an unsupported column type")
	}
}

func TestNilValuesEncodeEmpty(t *testing.T) {
	v, err := JSON(nil).Value()
	if err != nil || string(v.([]byte)) != "{}" {
		t.Errorf("expected {}, got %v (%v)", v, err)
	}
	v, err = StringList(nil).Value()
	if err != nil || string(v.([]byte)) != "[]" {
		t.Errorf("expected [], got %v (%v)", v, err)
	}
}

func TestPermissions(t *testing.T) {
	if got := PermissionRead(UserRole("u1")); got != `read("user:u1")` {
		t.Errorf("unexpected permission %s", got)
	}
	if got := PermissionWrite(AnyUserRole); got != `write("users")` {
		t.Errorf("unexpected permission %s", got)
	}
}
