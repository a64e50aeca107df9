package domain

// PreferenceProfile is a per-user weighting profile derived from a
// bounded window of past interactions. It is rebuilt on every ranking
// request and never stored, so staleness is bounded only by the
// interaction window queried.
type PreferenceProfile struct {
	CategoryAffinity map[Category]float64 `json:"category_affinity"`
	SourceAffinity   map[string]float64   `json:"source_affinity"`
	HourActivity     [24]int              `json:"hour_activity"`
}

const neutralAffinity = 0.5

// CategoryScore looks up the user's affinity for a category,
// defaulting to a neutral 0.5 for categories never interacted with.
func (p *PreferenceProfile) CategoryScore(c Category) float64 {
	if v, ok := p.CategoryAffinity[c]; ok {
		return v
	}
	return neutralAffinity
}

// SourceScore looks up the user's affinity for a source, defaulting to
// a neutral 0.5 for sources never interacted with.
func (p *PreferenceProfile) SourceScore(source string) float64 {
	if v, ok := p.SourceAffinity[source]; ok {
		return v
	}
	return neutralAffinity
}

// DefaultPreferenceProfile is the cold-start profile used when a user
// has no interaction history, or when the history collaborator is
// unavailable. It favors technology and business over health and
// science; sports and entertainment fall through to the neutral default.
func DefaultPreferenceProfile() *PreferenceProfile {
	return &PreferenceProfile{
		CategoryAffinity: map[Category]float64{
			CategoryTechnology: 0.8,
			CategoryBusiness:   0.7,
			CategoryGeneral:    0.6,
			CategoryHealth:     0.5,
			CategoryScience:    0.5,
		},
		SourceAffinity: map[string]float64{},
	}
}
