package ranking

import (
	"testing"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func fixedEngine() *Engine {
	return NewEngineWithClock(func() time.Time { return fixedNow })
}

func article(id string, category domain.Category, source string, age time.Duration) *domain.Article {
	return &domain.Article{
		ID:          id,
		Title:       "title " + id,
		Category:    category,
		Source:      source,
		PublishedAt: fixedNow.Add(-age),
	}
}

func TestRankPersonalized_WeightConservation(t *testing.T) {
	engine := fixedEngine()
	profile := domain.DefaultPreferenceProfile()

	candidates := []*domain.Article{
		article("a", domain.CategoryTechnology, "Wired", 30*time.Minute),
	}

	got := engine.RankPersonalized(candidates, map[string]float64{"a": 0.9}, profile, 10)
	require.Len(t, got, 1)

	b := got[0].Breakdown
	want := b.BaseScore*0.6 + b.CategoryBoost*0.2 + b.RecencyBoost*0.1 + b.SourceBoost*0.05 + b.DiversityPenalty*0.05
	assert.InDelta(t, want, got[0].FinalScore, 1e-12)
	assert.GreaterOrEqual(t, got[0].FinalScore, 0.0)
	assert.LessOrEqual(t, got[0].FinalScore, 1.0)
}

func TestRankPersonalized_MissingBaseScoreIsNeutral(t *testing.T) {
	engine := fixedEngine()
	profile := domain.DefaultPreferenceProfile()

	candidates := []*domain.Article{
		article("unscored", domain.CategoryGeneral, "BBC", 2*time.Hour),
	}

	got := engine.RankPersonalized(candidates, map[string]float64{}, profile, 10)
	require.Len(t, got, 1, "an article missing a score is never rejected")
	assert.InDelta(t, 0.5, got[0].Breakdown.BaseScore, 1e-9)
}

func TestRankPersonalized_Deterministic(t *testing.T) {
	engine := fixedEngine()
	profile := domain.DefaultPreferenceProfile()

	candidates := []*domain.Article{
		article("a", domain.CategoryTechnology, "Wired", time.Hour),
		article("b", domain.CategoryBusiness, "Bloomberg", 3*time.Hour),
		article("c", domain.CategoryTechnology, "TechCrunch", 12*time.Hour),
		article("d", domain.CategoryScience, "Nature", 30*time.Hour),
	}
	scores := map[string]float64{"a": 0.9, "b": 0.8, "c": 0.7, "d": 0.6}

	first := engine.RankPersonalized(candidates, scores, profile, 10)
	second := engine.RankPersonalized(candidates, scores, profile, 10)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Article.ID, second[i].Article.ID)
		assert.Equal(t, first[i].FinalScore, second[i].FinalScore)
		assert.Equal(t, first[i].Breakdown, second[i].Breakdown)
	}
}

func TestRankPersonalized_NoDuplicateOutput(t *testing.T) {
	engine := fixedEngine()
	profile := domain.DefaultPreferenceProfile()

	candidates := Deduplicate([]*domain.Article{
		article("a", domain.CategoryTechnology, "Wired", time.Hour),
		article("a", domain.CategoryTechnology, "Wired", time.Hour),
		article("b", domain.CategoryBusiness, "Bloomberg", time.Hour),
	})

	got := engine.RankPersonalized(candidates, map[string]float64{}, profile, 10)

	seen := map[string]bool{}
	for _, entry := range got {
		assert.False(t, seen[entry.Article.NormalizedTitle()], "duplicate title in output")
		seen[entry.Article.NormalizedTitle()] = true
	}
}

func TestRankPersonalized_DiversityObservesInsertionOrder(t *testing.T) {
	engine := fixedEngine()
	profile := domain.DefaultPreferenceProfile()

	candidates := []*domain.Article{
		article("t1", domain.CategoryTechnology, "Wired", time.Hour),
		article("t2", domain.CategoryTechnology, "TechCrunch", time.Hour),
		article("t3", domain.CategoryTechnology, "Ars Technica", time.Hour),
	}

	got := engine.RankPersonalized(candidates, map[string]float64{"t1": 0.9, "t2": 0.9, "t3": 0.9}, profile, 10)
	require.Len(t, got, 3)

	byID := map[string]*domain.RankedArticle{}
	for _, entry := range got {
		byID[entry.Article.ID] = entry
	}

	// Penalty reflects the prefix committed before each candidate.
	assert.InDelta(t, 1.0, byID["t1"].Breakdown.DiversityPenalty, 1e-9)
	assert.InDelta(t, 0.9, byID["t2"].Breakdown.DiversityPenalty, 1e-9)
	assert.InDelta(t, 0.8, byID["t3"].Breakdown.DiversityPenalty, 1e-9)
}

// Five candidates, three technology with high base scores and two
// business: technology leads on base score, but by the third
// technology article the diversity penalty narrows the gap against the
// interleaved business articles.
func TestRankPersonalized_DiversityScenario(t *testing.T) {
	engine := fixedEngine()
	profile := BuildPreferenceProfile(nil, nil)

	candidates := []*domain.Article{
		article("t1", domain.CategoryTechnology, "Wired", time.Hour),
		article("t2", domain.CategoryTechnology, "TechCrunch", time.Hour),
		article("t3", domain.CategoryTechnology, "Ars Technica", time.Hour),
		article("b1", domain.CategoryBusiness, "Bloomberg", time.Hour),
		article("b2", domain.CategoryBusiness, "Reuters", time.Hour),
	}
	scores := map[string]float64{"t1": 0.9, "t2": 0.8, "t3": 0.7, "b1": 0.6, "b2": 0.5}

	got := engine.RankPersonalized(candidates, scores, profile, 5)
	require.Len(t, got, 5)

	assert.Equal(t, "t1", got[0].Article.ID)
	assert.Equal(t, "t2", got[1].Article.ID)

	byID := map[string]*domain.RankedArticle{}
	for _, entry := range got {
		byID[entry.Article.ID] = entry
	}

	// The third technology article carries a real penalty while the
	// first business article carries none, suppressing t3's margin
	// over b1 relative to their raw base-score gap.
	assert.InDelta(t, 0.8, byID["t3"].Breakdown.DiversityPenalty, 1e-9)
	assert.InDelta(t, 1.0, byID["b1"].Breakdown.DiversityPenalty, 1e-9)
	rawGap := 0.7 - 0.6
	finalGap := byID["t3"].FinalScore - byID["b1"].FinalScore
	assert.Less(t, finalGap, rawGap)
}

func TestRankPersonalized_Truncation(t *testing.T) {
	engine := fixedEngine()
	profile := domain.DefaultPreferenceProfile()

	candidates := []*domain.Article{
		article("a", domain.CategoryTechnology, "Wired", time.Hour),
		article("b", domain.CategoryBusiness, "Bloomberg", time.Hour),
		article("c", domain.CategoryScience, "Nature", time.Hour),
	}

	got := engine.RankPersonalized(candidates, map[string]float64{}, profile, 2)
	assert.Len(t, got, 2)
}

func TestRankByBaseScore(t *testing.T) {
	engine := fixedEngine()

	candidates := []*domain.Article{
		article("low", domain.CategoryScience, "Nature", time.Hour),
		article("high", domain.CategoryScience, "Nature", time.Hour),
		article("unscored", domain.CategoryScience, "Nature", time.Hour),
	}

	got := engine.RankByBaseScore(candidates, map[string]float64{"low": 0.2, "high": 0.9}, 10)
	require.Len(t, got, 3)
	assert.Equal(t, "high", got[0].Article.ID)
	assert.Equal(t, "unscored", got[1].Article.ID)
	assert.InDelta(t, 0.5, got[1].FinalScore, 1e-9)
	assert.Equal(t, "low", got[2].Article.ID)
}

func TestFallback_PreservesOriginalOrder(t *testing.T) {
	candidates := []*domain.Article{
		article("a", domain.CategoryTechnology, "Wired", time.Hour),
		article("b", domain.CategoryBusiness, "Bloomberg", time.Hour),
		article("c", domain.CategoryScience, "Nature", time.Hour),
	}

	got := Fallback(candidates, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Article.ID)
	assert.Equal(t, "b", got[1].Article.ID)
	assert.Zero(t, got[0].FinalScore)
}
