package ranking

import (
	"sort"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// Trending weights: no user profile is involved, so recency and source
// credibility carry the correction band instead.
const (
	trendingBaseWeight    = 0.6
	trendingRecencyWeight = 0.3
	trendingSourceWeight  = 0.1
	defaultCredibility    = 0.6
)

// sourceCredibility is a fixed lookup of known outlets.
var sourceCredibility = map[string]float64{
	"Reuters":          1.0,
	"BBC":              1.0,
	"Associated Press": 1.0,
	"Nature":           1.0,
	"Bloomberg":        0.9,
	"Science Daily":    0.9,
	"CNN":              0.8,
	"TechCrunch":       0.8,
	"Wired":            0.8,
}

// SourceCredibility returns the credibility score of a news outlet,
// defaulting to 0.6 for unknown sources.
func SourceCredibility(source string) float64 {
	if v, ok := sourceCredibility[source]; ok {
		return v
	}
	return defaultCredibility
}

// RankTrending scores candidates without any user signal:
// base*0.6 + recency*0.3 + credibility*0.1, sorted descending and
// truncated to topK. The credibility component is reported in the
// breakdown's SourceBoost slot.
func (e *Engine) RankTrending(candidates []*domain.Article, baseScores map[string]float64, topK int) []*domain.RankedArticle {
	now := e.now()
	ranked := make([]*domain.RankedArticle, 0, len(candidates))

	for _, article := range candidates {
		base, ok := baseScores[article.ID]
		if !ok {
			base = neutralBaseScore
		}

		breakdown := domain.ScoreBreakdown{
			BaseScore:    base,
			RecencyBoost: RecencyBoost(article.PublishedAt, now),
			SourceBoost:  SourceCredibility(article.Source),
		}

		ranked = append(ranked, &domain.RankedArticle{
			Article: article,
			FinalScore: breakdown.BaseScore*trendingBaseWeight +
				breakdown.RecencyBoost*trendingRecencyWeight +
				breakdown.SourceBoost*trendingSourceWeight,
			Breakdown: breakdown,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	return truncate(ranked, topK)
}
