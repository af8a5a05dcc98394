package domain

import "time"

// User represents a registered account in the system
type User struct {
	ID          string
	Username    string
	Email       string
	Password    string // stored as an opaque string, compared verbatim at login
	FullName    string
	PhoneNumber *string
	CreatedAt   time.Time
}
