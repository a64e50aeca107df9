package rest

import (
	"github.com/Balaji-vnls/VNLS-press/domain"
)

type ArticleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	PublishedAt string `json:"published_at"`
	ImageURL    string `json:"image_url,omitempty"`
	Author      string `json:"author,omitempty"`
}

type RankedArticleResponse struct {
	Position   int                   `json:"position"`
	Article    ArticleResponse       `json:"article"`
	FinalScore float64               `json:"final_score"`
	Breakdown  domain.ScoreBreakdown `json:"breakdown"`
}

type RankingResponse struct {
	Articles  []RankedArticleResponse `json:"articles"`
	Total     int                     `json:"total"`
	Algorithm string                  `json:"algorithm"`
	Degraded  bool                    `json:"degraded"`
	Message   string                  `json:"message,omitempty"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type InteractionPayload struct {
	UserID          string            `json:"user_id"`
	ArticleID       string            `json:"article_id"`
	Type            string            `json:"type"`
	DurationSeconds float64           `json:"duration_seconds,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type InteractionResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ArticleID string `json:"article_id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

type FeedbackPayload struct {
	UserID    string `json:"user_id"`
	ArticleID string `json:"article_id"`
	Liked     bool   `json:"liked"`
}
