package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Collection names used by the application.
const (
	CollectionUsers        = "users"
	CollectionAdmin        = "admin"
	CollectionDoctors      = "doctors"
	CollectionAppointments = "appointment"
	CollectionClinics      = "clinics"
	CollectionFeedback     = "feedback"
)

// UniqueID asks the document store or account client to generate the id.
const UniqueID = "unique()"

// Document is a schemaless record stored in a named collection.
type Document struct {
	ID          string     `gorm:"type:varchar(64);primaryKey" json:"$id"`
	Collection  string     `gorm:"type:varchar(64);primaryKey;index" json:"$collection"`
	Data        JSON       `gorm:"type:jsonb;not null" json:"data"`
	Permissions StringList `gorm:"type:jsonb" json:"$permissions,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"$createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"$updatedAt"`
}

func (Document) TableName() string {
	return "documents"
}

// String returns the field as a string, or "" when absent or not a string.
func (d *Document) String(field string) string {
	if d == nil || d.Data == nil {
		return ""
	}
	s, _ := d.Data[field].(string)
	return s
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface. Numbers are
// kept as json.Number so decimals read back without float rounding.
func (j *JSON) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil || data == nil {
		*j = nil
		return err
	}

	result := map[string]interface{}{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	err = decoder.Decode(&result)
	*j = JSON(result)
	return err
}

// StringList stores permission strings such as read("user:42") as a JSONB array.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil || bytes == nil {
		*s = nil
		return err
	}

	var result []string
	err = json.Unmarshal(bytes, &result)
	*s = StringList(result)
	return err
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
}

// Permission helpers in the read("role") notation understood by the store.
func PermissionRead(role string) string   { return fmt.Sprintf("read(%q)", role) }
func PermissionWrite(role string) string  { return fmt.Sprintf("write(%q)", role) }
func PermissionUpdate(role string) string { return fmt.Sprintf("update(%q)", role) }
func PermissionDelete(role string) string { return fmt.Sprintf("delete(%q)", role) }

// UserRole is the permission role addressing a single account.
func UserRole(accountID string) string {
	return "user:" + accountID
}

// AnyUserRole addresses every authenticated account.
const AnyUserRole = "users"
