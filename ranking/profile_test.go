package ranking

import (
	"testing"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/stretchr/testify/assert"
)

func interactionFor(category domain.Category, source string, at time.Time) *domain.Interaction {
	return &domain.Interaction{
		UserID:    "user-1",
		ArticleID: "article-1",
		Kind:      domain.InteractionRead,
		CreatedAt: at,
		Article:   &domain.InteractionArticle{Category: category, Source: source},
	}
}

func TestBuildPreferenceProfile_ColdStart(t *testing.T) {
	profile := BuildPreferenceProfile(nil, nil)

	assert.Equal(t, domain.DefaultPreferenceProfile(), profile)
	assert.InDelta(t, 0.8, profile.CategoryScore(domain.CategoryTechnology), 1e-9)
	assert.InDelta(t, 0.7, profile.CategoryScore(domain.CategoryBusiness), 1e-9)
	// Sports is absent from the default table and falls back to neutral.
	assert.InDelta(t, 0.5, profile.CategoryScore(domain.CategorySports), 1e-9)
}

func TestBuildPreferenceProfile_CategoryNormalizationIsSuperLinear(t *testing.T) {
	counts := map[domain.Category]int{
		domain.CategoryTechnology: 3,
		domain.CategoryBusiness:   1,
	}

	profile := BuildPreferenceProfile(nil, counts)

	// 3/4 of attention doubles past 1.0 and clamps.
	assert.InDelta(t, 1.0, profile.CategoryScore(domain.CategoryTechnology), 1e-9)
	// 1/4 of attention scores 0.5, not 0.25.
	assert.InDelta(t, 0.5, profile.CategoryScore(domain.CategoryBusiness), 1e-9)
}

func TestBuildPreferenceProfile_CategoryCountsDerivedFromInteractions(t *testing.T) {
	now := time.Now()
	interactions := []*domain.Interaction{
		interactionFor(domain.CategoryScience, "Nature", now),
		interactionFor(domain.CategoryScience, "Nature", now),
		interactionFor(domain.CategoryHealth, "WebMD", now),
		interactionFor(domain.CategoryHealth, "WebMD", now),
	}

	profile := BuildPreferenceProfile(interactions, nil)

	assert.InDelta(t, 1.0, profile.CategoryScore(domain.CategoryScience), 1e-9)
	assert.InDelta(t, 1.0, profile.CategoryScore(domain.CategoryHealth), 1e-9)
}

func TestBuildPreferenceProfile_SourceAffinityNormalizedByMax(t *testing.T) {
	now := time.Now()
	interactions := []*domain.Interaction{
		interactionFor(domain.CategoryTechnology, "TechCrunch", now),
		interactionFor(domain.CategoryTechnology, "TechCrunch", now),
		interactionFor(domain.CategoryTechnology, "TechCrunch", now),
		interactionFor(domain.CategoryTechnology, "Wired", now),
	}

	profile := BuildPreferenceProfile(interactions, nil)

	// The most-engaged source always scores 1.0.
	assert.InDelta(t, 1.0, profile.SourceScore("TechCrunch"), 1e-9)
	assert.InDelta(t, 1.0/3.0, profile.SourceScore("Wired"), 1e-9)
	assert.InDelta(t, 0.5, profile.SourceScore("Unseen Gazette"), 1e-9)
}

func TestBuildPreferenceProfile_HourActivityHistogram(t *testing.T) {
	base := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	interactions := []*domain.Interaction{
		interactionFor(domain.CategoryGeneral, "BBC", base.Add(8*time.Hour)),
		interactionFor(domain.CategoryGeneral, "BBC", base.Add(8*time.Hour+30*time.Minute)),
		interactionFor(domain.CategoryGeneral, "BBC", base.Add(21*time.Hour)),
	}

	profile := BuildPreferenceProfile(interactions, nil)

	assert.Equal(t, 2, profile.HourActivity[8])
	assert.Equal(t, 1, profile.HourActivity[21])
	assert.Equal(t, 0, profile.HourActivity[12])
}

func TestBuildPreferenceProfile_InteractionsWithoutJoinedArticle(t *testing.T) {
	now := time.Now()
	interactions := []*domain.Interaction{
		{UserID: "user-1", ArticleID: "gone", Kind: domain.InteractionClick, CreatedAt: now},
	}

	profile := BuildPreferenceProfile(interactions, nil)

	// No joined article attributes: category affinity falls back to the
	// default table, source affinity stays empty.
	assert.Equal(t, domain.DefaultPreferenceProfile().CategoryAffinity, profile.CategoryAffinity)
	assert.Empty(t, profile.SourceAffinity)
	assert.Equal(t, 1, profile.HourActivity[now.Hour()])
}
