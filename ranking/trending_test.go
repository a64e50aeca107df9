package ranking

import (
	"testing"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceCredibility(t *testing.T) {
	assert.InDelta(t, 1.0, SourceCredibility("Reuters"), 1e-9)
	assert.InDelta(t, 0.9, SourceCredibility("Bloomberg"), 1e-9)
	assert.InDelta(t, 0.8, SourceCredibility("TechCrunch"), 1e-9)
	assert.InDelta(t, 0.6, SourceCredibility("Some Blog"), 1e-9)
}

func TestRankTrending_Formula(t *testing.T) {
	engine := fixedEngine()

	candidates := []*domain.Article{
		article("a", domain.CategoryGeneral, "Reuters", 30*time.Minute),
	}

	got := engine.RankTrending(candidates, map[string]float64{"a": 0.7}, 10)
	require.Len(t, got, 1)

	// base*0.6 + recency*0.3 + credibility*0.1
	assert.InDelta(t, 0.7*0.6+1.0*0.3+1.0*0.1, got[0].FinalScore, 1e-12)
	assert.InDelta(t, 1.0, got[0].Breakdown.RecencyBoost, 1e-9)
	assert.InDelta(t, 1.0, got[0].Breakdown.SourceBoost, 1e-9)
}

func TestRankTrending_FreshnessOutweighsBaseGap(t *testing.T) {
	engine := fixedEngine()

	candidates := []*domain.Article{
		article("stale", domain.CategoryGeneral, "Reuters", 100*time.Hour),
		article("fresh", domain.CategoryGeneral, "Reuters", 30*time.Minute),
	}
	scores := map[string]float64{"stale": 0.8, "fresh": 0.7}

	got := engine.RankTrending(candidates, scores, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[0].Article.ID)
}

func TestRankTrending_MissingScoreAndTruncation(t *testing.T) {
	engine := fixedEngine()

	candidates := []*domain.Article{
		article("a", domain.CategoryGeneral, "BBC", time.Hour),
		article("b", domain.CategoryGeneral, "CNN", time.Hour),
		article("c", domain.CategoryGeneral, "Some Blog", time.Hour),
	}

	got := engine.RankTrending(candidates, nil, 2)
	require.Len(t, got, 2)
	for _, entry := range got {
		assert.InDelta(t, 0.5, entry.Breakdown.BaseScore, 1e-9)
	}
	// Equal base and recency: credibility decides.
	assert.Equal(t, "a", got[0].Article.ID)
	assert.Equal(t, "b", got[1].Article.ID)
}
