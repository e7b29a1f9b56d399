// Package models contains the persistent data types shared by the
// repositories and services.
package models

// User is an account record. PasswordHash holds a bcrypt hash; the cleartext
// password is never stored.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
