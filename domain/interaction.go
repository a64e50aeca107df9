package domain

import (
	"strings"
	"time"
)

// InteractionKind enumerates the ways a user can engage with an article.
type InteractionKind string

const (
	InteractionView     InteractionKind = "view"
	InteractionClick    InteractionKind = "click"
	InteractionRead     InteractionKind = "read"
	InteractionLike     InteractionKind = "like"
	InteractionShare    InteractionKind = "share"
	InteractionBookmark InteractionKind = "bookmark"
	InteractionFeedback InteractionKind = "feedback"
)

// ParseInteractionKind resolves a request parameter to a known kind.
func ParseInteractionKind(s string) (InteractionKind, bool) {
	k := InteractionKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case InteractionView, InteractionClick, InteractionRead,
		InteractionLike, InteractionShare, InteractionBookmark, InteractionFeedback:
		return k, true
	}
	return "", false
}

// InteractionArticle carries the article attributes joined onto an
// interaction row for preference derivation.
type InteractionArticle struct {
	Category Category `json:"category"`
	Source   string   `json:"source"`
}

// Interaction is one append-only engagement record. Reads are ordered
// most-recent-first; the record is never mutated after insert.
type Interaction struct {
	ID              string              `json:"id" db:"id"`
	UserID          string              `json:"user_id" db:"user_id"`
	ArticleID       string              `json:"article_id" db:"article_id"`
	Kind            InteractionKind     `json:"interaction_type" db:"interaction_type"`
	DurationSeconds float64             `json:"duration,omitempty" db:"duration"`
	Metadata        map[string]string   `json:"metadata,omitempty" db:"metadata"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	Article         *InteractionArticle `json:"article,omitempty"`
}
