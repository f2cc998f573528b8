package users

import "time"

// User is an admin account. The public page needs no accounts; everything
// behind /admin requires one.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `json:"name"`
	Email string `gorm:"not null;uniqueIndex" json:"email"`

	Password     *string `json:"-"` // bcrypt hash, nil for google-only accounts
	AuthProvider string  `gorm:"not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex" json:"-"`

	Role string `gorm:"not null;default:'admin'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
