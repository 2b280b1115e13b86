package model

import "time"

// Category represents a row in the `categories` table. Titles are checked
// for presence and length by the validator; uniqueness, if desired, is a
// database concern and not enforced here.
type Category struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
