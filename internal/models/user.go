package models

import "time"

// User is created on the first OAuth login callback and upserted by OpenID
// on every login after that. Rows are never hard-deleted.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OpenID      string `gorm:"size:64;uniqueIndex;not null" json:"open_id"`
	Name        string `gorm:"size:255" json:"name"`
	Email       string `gorm:"size:320" json:"email"`
	LoginMethod string `gorm:"size:64" json:"login_method"`
	Role        string `gorm:"size:20;default:'user'" json:"role"`

	// NoShowCount tracks missed appointments; at 2 the account is blocked
	// from booking.
	NoShowCount int  `gorm:"default:0" json:"no_show_count"`
	IsBlocked   bool `gorm:"default:false" json:"is_blocked"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
