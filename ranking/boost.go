package ranking

import (
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// categoryBaseWeights is the fixed editorial weighting of each
// category, applied on top of the user's own affinity.
var categoryBaseWeights = map[domain.Category]float64{
	domain.CategoryTechnology:    1.0,
	domain.CategoryBusiness:      1.0,
	domain.CategoryHealth:        1.0,
	domain.CategoryScience:       1.0,
	domain.CategoryGeneral:       0.8,
	domain.CategorySports:        0.7,
	domain.CategoryEntertainment: 0.6,
}

const (
	defaultBaseWeight = 0.5
	neutralBoost      = 0.5
)

// CategoryBoost combines the fixed category weight with the user's
// affinity for that category. Unknown categories get the neutral
// default on both factors.
func CategoryBoost(category domain.Category, profile *domain.PreferenceProfile) float64 {
	baseWeight, ok := categoryBaseWeights[category]
	if !ok {
		baseWeight = defaultBaseWeight
	}
	return baseWeight * profile.CategoryScore(category)
}

// RecencyBoost is a step function on article age. A missing
// publication timestamp scores a neutral 0.5 rather than dropping the
// article.
func RecencyBoost(publishedAt, now time.Time) float64 {
	if publishedAt.IsZero() {
		return neutralBoost
	}

	age := now.Sub(publishedAt)
	switch {
	case age <= time.Hour:
		return 1.0
	case age <= 6*time.Hour:
		return 0.8
	case age <= 24*time.Hour:
		return 0.6
	case age <= 72*time.Hour:
		return 0.4
	default:
		return 0.2
	}
}

// SourceBoost is the user's affinity for the article's source, 0.5 for
// sources the user has never engaged with.
func SourceBoost(source string, profile *domain.PreferenceProfile) float64 {
	return profile.SourceScore(source)
}

// DiversityPenalty dampens candidates that repeat the category or
// source of results already accepted into the list being assembled.
// It is a multiplicative factor in [0.5, 1.0], not a boost: 1.0 for
// the first result, minus 0.1 per same-category repeat and 0.15 per
// same-source repeat, floored at 0.5, taking the harsher of the two.
//
// The penalty is order-dependent: it must be evaluated incrementally
// against the prefix of accepted results, never against the full
// unranked candidate set.
func DiversityPenalty(article *domain.Article, accepted []*domain.RankedArticle) float64 {
	if len(accepted) == 0 {
		return 1.0
	}

	sameCategory := 0
	sameSource := 0
	for _, prior := range accepted {
		if prior.Article.Category == article.Category {
			sameCategory++
		}
		if prior.Article.Source == article.Source {
			sameSource++
		}
	}

	categoryPenalty := 1.0 - float64(sameCategory)*0.1
	if categoryPenalty < 0.5 {
		categoryPenalty = 0.5
	}
	sourcePenalty := 1.0 - float64(sameSource)*0.15
	if sourcePenalty < 0.5 {
		sourcePenalty = 0.5
	}

	if sourcePenalty < categoryPenalty {
		return sourcePenalty
	}
	return categoryPenalty
}
