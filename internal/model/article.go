package model

import "time"

// PublicationState is the lifecycle state of an article. Only the values
// below are legal; the validator rejects anything else before persistence.
type PublicationState string

const (
	StateDraft     PublicationState = "draft"     // default on creation, not publicly dated
	StatePublished PublicationState = "published" // visible, carries a publication date
)

// ValidPublicationState reports whether s is one of the defined states.
func ValidPublicationState(s PublicationState) bool {
	return s == StateDraft || s == StatePublished
}

// Article represents a row in the `articles` table. The Category and
// Author references are resolved by the repository before validation;
// the validator only checks that Category is set.
//
// Invariant: PublishedAt is non-nil if and only if State is published.
// SetState is the only place that touches PublishedAt, so every
// transition keeps the invariant.
type Article struct {
	ID          uint64           `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	CategoryID  uint64           `json:"category_id"`
	Category    *Category        `json:"category,omitempty"`
	AuthorID    uint64           `json:"author_id"`
	Author      *User            `json:"author,omitempty"`
	State       PublicationState `json:"state"`
	PublishedAt *time.Time       `json:"published_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewArticle returns an article in the draft state with no publication date.
func NewArticle() *Article {
	return &Article{State: StateDraft}
}

// SetState transitions the article and keeps the publication date in sync:
// entering published stamps the current UTC time, entering draft clears it.
func (a *Article) SetState(s PublicationState) {
	a.State = s
	if s == StatePublished {
		now := time.Now().UTC()
		a.PublishedAt = &now
		return
	}
	a.PublishedAt = nil
}
