package dto

import "time"

// Response DTOs

type AuditLogResponse struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id,omitempty"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  string      `json:"entity_id"`
	OldValue  interface{} `json:"old_value"`
	NewValue  interface{} `json:"new_value"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
