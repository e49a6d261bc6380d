package entity

import "strings"

// AccountStatus values stored in users.account_status
const (
	AccountStatusActive   = "Active"
	AccountStatusInactive = "Inactive"
)

// User is an authentication record, optionally linked to a Party.
// PasswordHash holds whatever the configured credential verifier produced,
// which for the plaintext verifier is the password itself.
type User struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	PartyID       *int64 `gorm:"column:party_id" json:"party_id,omitempty"`
	Username      string `gorm:"column:username;type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash  string `gorm:"column:password_hash;not null" json:"-"`
	AccountStatus string `gorm:"column:account_status;type:varchar(20);not null" json:"status"`
}

func (User) TableName() string {
	return "users"
}

// IsActive compares the status ignoring case and surrounding whitespace
func (u *User) IsActive() bool {
	return strings.ToLower(strings.TrimSpace(u.AccountStatus)) == "active"
}
