package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Category classifies an article into one of the fixed editorial sections.
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryTechnology    Category = "technology"
	CategoryBusiness      Category = "business"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
)

// Categories returns the fixed category set in presentation order.
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryTechnology,
		CategoryBusiness,
		CategoryHealth,
		CategoryScience,
		CategorySports,
		CategoryEntertainment,
	}
}

// ParseCategory resolves a request parameter to a known category.
// Unknown names are rejected at the boundary so downstream code only
// ever sees members of the fixed set.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryGeneral, CategoryTechnology, CategoryBusiness,
		CategoryHealth, CategoryScience, CategorySports, CategoryEntertainment:
		return c, true
	}
	return "", false
}

// Article represents a candidate news article supplied by the ingestion
// collaborator. Scoring annotations are never stored on the article
// itself; they live on RankedArticle for the duration of one ranking pass.
type Article struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Summary     string    `json:"summary" db:"summary"`
	URL         string    `json:"url" db:"url"`
	Source      string    `json:"source" db:"source"`
	Category    Category  `json:"category" db:"category"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	Author      string    `json:"author,omitempty" db:"author"`
}

// NewArticleID derives a stable identifier from title, source and
// publication time so repeated ingestion of the same logical article
// maps to the same entity.
func NewArticleID(title, source string, publishedAt time.Time) string {
	content := fmt.Sprintf("%s_%s_%s", title, source, publishedAt.UTC().Format(time.RFC3339))
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

// NormalizedTitle is the deduplication key: lower-cased, trimmed.
func (a *Article) NormalizedTitle() string {
	return strings.ToLower(strings.TrimSpace(a.Title))
}
