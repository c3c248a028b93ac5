package entity

import "time"

// Account is the identity managed by the account client. Password holds the
// bcrypt hash and never leaves the adapter.
type Account struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"$id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Name      string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"$createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"$updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}

// Session is an authenticated context created by exchanging credentials.
type Session struct {
	ID        string    `json:"$id"`
	AccountID string    `json:"userId"`
	Token     string    `json:"secret"`
	ExpiresAt time.Time `json:"expire"`
}

// CurrentSession addresses the session the client is currently bound to.
const CurrentSession = "current"
