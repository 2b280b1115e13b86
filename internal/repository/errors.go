// Package repository defines error values shared across repositories.
// Sentinel errors let handlers distinguish failure scenarios with
// errors.Is instead of string matching: a missing row maps to HTTP 404
// while a duplicate entry maps to HTTP 409.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicateEntry is returned when an insert or update violates a
// unique constraint (MySQL error 1062).
var ErrDuplicateEntry = errors.New("duplicate entry")

// isDuplicate reports whether err is a MySQL unique-constraint violation.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
