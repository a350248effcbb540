package domain

import "time"

// User is a registered account. FullName may be empty until the user sets it;
// several pairing operations require it to be present.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
