package ranking

import (
	"sort"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// Fixed policy weights. They sum to 1.0 so the model's relevance
// judgment dominates while personalization and diversity form a 40%
// correction band.
const (
	baseWeight      = 0.6
	categoryWeight  = 0.2
	recencyWeight   = 0.1
	sourceWeight    = 0.05
	diversityWeight = 0.05

	// neutralBaseScore stands in when the model returned no score for
	// an article; the article is scored, never rejected.
	neutralBaseScore = 0.5
)

// Engine combines base relevance scores with booster outputs into
// final scores. The clock is injectable so rankings are reproducible
// under test.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an engine on the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock returns an engine with a fixed clock for
// deterministic scoring.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// RankPersonalized scores candidates in the order given, appending
// each to the accepted list immediately so the diversity penalty of
// every candidate observes exactly the prefix accepted before it.
// Only after all candidates are processed is the list stable-sorted by
// final score and truncated to topK.
//
// The penalty therefore reflects insertion order, not the final sorted
// order. That is the documented contract, kept deliberately.
func (e *Engine) RankPersonalized(candidates []*domain.Article, baseScores map[string]float64, profile *domain.PreferenceProfile, topK int) []*domain.RankedArticle {
	now := e.now()
	accepted := make([]*domain.RankedArticle, 0, len(candidates))

	for _, article := range candidates {
		base, ok := baseScores[article.ID]
		if !ok {
			base = neutralBaseScore
		}

		breakdown := domain.ScoreBreakdown{
			BaseScore:        base,
			CategoryBoost:    CategoryBoost(article.Category, profile),
			RecencyBoost:     RecencyBoost(article.PublishedAt, now),
			SourceBoost:      SourceBoost(article.Source, profile),
			DiversityPenalty: DiversityPenalty(article, accepted),
		}

		accepted = append(accepted, &domain.RankedArticle{
			Article:    article,
			FinalScore: finalScore(breakdown),
			Breakdown:  breakdown,
		})
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].FinalScore > accepted[j].FinalScore
	})

	return truncate(accepted, topK)
}

// RankByBaseScore orders candidates by the model's base score alone,
// used for category browsing without a signed-in user.
func (e *Engine) RankByBaseScore(candidates []*domain.Article, baseScores map[string]float64, topK int) []*domain.RankedArticle {
	ranked := make([]*domain.RankedArticle, 0, len(candidates))
	for _, article := range candidates {
		base, ok := baseScores[article.ID]
		if !ok {
			base = neutralBaseScore
		}
		ranked = append(ranked, &domain.RankedArticle{
			Article:    article,
			FinalScore: base,
			Breakdown:  domain.ScoreBreakdown{BaseScore: base},
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	return truncate(ranked, topK)
}

// Fallback returns candidates in their original order with no scoring
// attached, used when the model collaborator fails or returns nothing.
// Ranking always returns something when candidates exist.
func Fallback(candidates []*domain.Article, topK int) []*domain.RankedArticle {
	ranked := make([]*domain.RankedArticle, 0, len(candidates))
	for _, article := range candidates {
		ranked = append(ranked, &domain.RankedArticle{Article: article})
	}
	return truncate(ranked, topK)
}

func finalScore(b domain.ScoreBreakdown) float64 {
	return b.BaseScore*baseWeight +
		b.CategoryBoost*categoryWeight +
		b.RecencyBoost*recencyWeight +
		b.SourceBoost*sourceWeight +
		b.DiversityPenalty*diversityWeight
}

func truncate(ranked []*domain.RankedArticle, topK int) []*domain.RankedArticle {
	if topK > 0 && len(ranked) > topK {
		return ranked[:topK]
	}
	return ranked
}
