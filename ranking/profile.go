package ranking

import (
	"github.com/Balaji-vnls/VNLS-press/domain"
)

// BuildPreferenceProfile derives a per-user weighting profile from a
// bounded window of interactions plus per-category interaction counts.
// The window itself (how many interactions, how many days back) is
// enforced by the storage collaborator; this function only aggregates
// whatever it was handed.
//
// A user with no history at all gets the cold-start default profile,
// so personalization degrades to a fixed editorial preference rather
// than failing the ranking request.
func BuildPreferenceProfile(interactions []*domain.Interaction, categoryCounts map[domain.Category]int) *domain.PreferenceProfile {
	if len(interactions) == 0 && len(categoryCounts) == 0 {
		return domain.DefaultPreferenceProfile()
	}

	profile := &domain.PreferenceProfile{
		CategoryAffinity: categoryAffinity(interactions, categoryCounts),
		SourceAffinity:   sourceAffinity(interactions),
	}

	for _, interaction := range interactions {
		profile.HourActivity[interaction.CreatedAt.Hour()]++
	}

	return profile
}

// categoryAffinity normalizes per-category counts by
// min(count/total*2, 1.0). The doubling is intentional: a category
// holding half the user's attention already scores 1.0, but a single
// dominant category does not saturate immediately.
func categoryAffinity(interactions []*domain.Interaction, counts map[domain.Category]int) map[domain.Category]float64 {
	if len(counts) == 0 {
		counts = countCategories(interactions)
	}
	if len(counts) == 0 {
		return domain.DefaultPreferenceProfile().CategoryAffinity
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	affinity := make(map[domain.Category]float64, len(counts))
	for category, count := range counts {
		v := float64(count) / float64(total) * 2
		if v > 1.0 {
			v = 1.0
		}
		affinity[category] = v
	}

	return affinity
}

// sourceAffinity normalizes per-source counts by the maximum observed,
// so the user's single most-engaged source always scores 1.0.
func sourceAffinity(interactions []*domain.Interaction) map[string]float64 {
	counts := make(map[string]int)
	for _, interaction := range interactions {
		if interaction.Article == nil || interaction.Article.Source == "" {
			continue
		}
		counts[interaction.Article.Source]++
	}
	if len(counts) == 0 {
		return map[string]float64{}
	}

	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}

	affinity := make(map[string]float64, len(counts))
	for source, count := range counts {
		affinity[source] = float64(count) / float64(max)
	}

	return affinity
}

func countCategories(interactions []*domain.Interaction) map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for _, interaction := range interactions {
		if interaction.Article == nil || interaction.Article.Category == "" {
			continue
		}
		counts[interaction.Article.Category]++
	}
	return counts
}
