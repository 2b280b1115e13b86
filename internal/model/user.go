package model

import "time"

// User represents an application user record as stored in the `users`
// table. Roles is the comma-separated `roles` column split into a slice
// by the repository layer; most users carry no roles at all and the
// `admin` role gates every state-changing endpoint except comment
// creation.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password, never serialized.
//  Roles        – role names granted to the user (may be empty).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
