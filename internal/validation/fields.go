// Package validation implements the request-side half of the mutation
// pipeline: required-field presence checks for creation, declarative
// partial-update application for patches, and business-rule validation
// of entities before they reach the repositories.
package validation

import "strconv"

// Fields is a decoded JSON request body. A field counts as present only
// when the key exists and its value is non-null; JSON null is treated
// the same as an absent key everywhere in this package.
type Fields map[string]any

// Has reports whether the named field is present with a non-null value.
func (f Fields) Has(name string) bool {
	v, ok := f[name]
	return ok && v != nil
}

// String returns the named field as a string, or "" when it is absent
// or not a string.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Uint returns the named field as a uint64. JSON numbers decode as
// float64; numeric strings are accepted too since clients routinely send
// ids both ways. Negative and fractional numbers yield 0 rather than a
// truncated id the caller never named.
func (f Fields) Uint(name string) uint64 {
	switch v := f[name].(type) {
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return 0
		}
		return uint64(v)
	case string:
		n, _ := strconv.ParseUint(v, 10, 64)
		return n
	}
	return 0
}

// CheckRequired walks the required names in the given order and returns,
// in that same order, every name absent (or null) in the body. An empty
// result means all required fields are present. Only presence is checked;
// field content is the entity validator's job.
func CheckRequired(f Fields, required ...string) []string {
	var missing []string
	for _, name := range required {
		if !f.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
