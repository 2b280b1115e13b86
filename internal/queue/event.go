// Package queue defines message payloads exchanged over the message broker
// and the background consumer that feeds the moderation log.
package queue

// ArticlePublishedEvent is published when an article transitions into the
// published state. It carries enough for downstream consumers to notify
// or index without querying the primary database.
type ArticlePublishedEvent struct {
	ArticleID   uint64 `json:"article_id"`
	Title       string `json:"title"`
	CategoryID  uint64 `json:"category_id"`
	AuthorID    uint64 `json:"author_id"`
	PublishedAt string `json:"published_at"`
}

// CommentSubmittedEvent is published when a new comment is persisted in
// the pending state, so moderators can be alerted out of band.
type CommentSubmittedEvent struct {
	CommentID   uint64 `json:"comment_id"`
	ArticleID   uint64 `json:"article_id"`
	AuthorID    uint64 `json:"author_id"`
	State       string `json:"state"`
	SubmittedAt string `json:"submitted_at"`
}

// Queue names. Publisher and consumer must agree on these.
const (
	ArticlePublishedQueue = "article.published"
	CommentSubmittedQueue = "comment.submitted"
)
