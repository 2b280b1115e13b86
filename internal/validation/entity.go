package validation

import "github.com/tlevasseur/blog-api/internal/model"

// maxTitleLen matches the VARCHAR(255) columns backing titles.
const maxTitleLen = 255

// Violation describes one business-rule failure on an entity field.
// Violations are surfaced verbatim in the 400 response body.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateArticle checks an article after all fields have been assigned.
// The category reference must already be resolved by the caller; only its
// presence is checked here. A nil result means the article is valid.
func ValidateArticle(a *model.Article) []Violation {
	var vs []Violation
	if a.Title == "" {
		vs = append(vs, Violation{Field: "title", Reason: "must not be empty"})
	} else if len(a.Title) > maxTitleLen {
		vs = append(vs, Violation{Field: "title", Reason: "must be at most 255 characters"})
	}
	if a.Content == "" {
		vs = append(vs, Violation{Field: "content", Reason: "must not be empty"})
	}
	if a.Category == nil {
		vs = append(vs, Violation{Field: "category", Reason: "must reference an existing category"})
	}
	if a.State != "" && !model.ValidPublicationState(a.State) {
		vs = append(vs, Violation{Field: "state", Reason: "must be one of: draft, published"})
	}
	return vs
}

// ValidateCategory checks a category. Title uniqueness is left to the
// database layer; only emptiness and length are checked here.
func ValidateCategory(c *model.Category) []Violation {
	var vs []Violation
	if c.Title == "" {
		vs = append(vs, Violation{Field: "title", Reason: "must not be empty"})
	} else if len(c.Title) > maxTitleLen {
		vs = append(vs, Violation{Field: "title", Reason: "must be at most 255 characters"})
	}
	return vs
}

// ValidateComment checks a comment.
func ValidateComment(c *model.Comment) []Violation {
	var vs []Violation
	if c.Text == "" {
		vs = append(vs, Violation{Field: "comment", Reason: "must not be empty"})
	}
	if c.State != "" && !model.ValidModerationState(c.State) {
		vs = append(vs, Violation{Field: "state", Reason: "must be one of: pending, approved, rejected"})
	}
	return vs
}
