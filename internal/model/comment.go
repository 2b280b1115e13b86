package model

import "time"

// ModerationState is the moderation status of a comment. New comments
// start pending; a moderator may move a comment to any defined state.
type ModerationState string

const (
	ModerationPending  ModerationState = "pending"  // default on creation, awaiting review
	ModerationApproved ModerationState = "approved" // visible to readers
	ModerationRejected ModerationState = "rejected" // hidden from readers
)

// ValidModerationState reports whether s is one of the defined states.
func ValidModerationState(s ModerationState) bool {
	switch s {
	case ModerationPending, ModerationApproved, ModerationRejected:
		return true
	}
	return false
}

// Comment represents a row in the `comments` table. A comment belongs to
// exactly one article and one author.
type Comment struct {
	ID        uint64          `json:"id"`
	Text      string          `json:"text"`
	ArticleID uint64          `json:"article_id"`
	AuthorID  uint64          `json:"author_id"`
	Author    *User           `json:"author,omitempty"`
	State     ModerationState `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewComment returns a comment in the pending moderation state.
func NewComment() *Comment {
	return &Comment{State: ModerationPending}
}
