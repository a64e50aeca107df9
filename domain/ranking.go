package domain

// ScoreBreakdown records every component that contributed to a final
// score. It is attached to each result for observability and is
// reproducible for identical inputs.
type ScoreBreakdown struct {
	BaseScore        float64 `json:"base_score"`
	CategoryBoost    float64 `json:"category_boost"`
	RecencyBoost     float64 `json:"recency_boost"`
	SourceBoost      float64 `json:"source_boost"`
	DiversityPenalty float64 `json:"diversity_penalty"`
}

// RankedArticle is one entry of a ranking result: the article plus its
// transient scoring annotation. The annotation is recomputed on every
// ranking pass and never persisted as part of the article's identity.
type RankedArticle struct {
	Article    *Article       `json:"article"`
	FinalScore float64        `json:"final_score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// RankingResult is the ordered, deduplicated output of one ranking
// call. It is ephemeral; any persistence (such as the served log) is
// the caller's concern.
type RankingResult struct {
	Articles  []*RankedArticle `json:"articles"`
	Algorithm string           `json:"algorithm"`
	Degraded  bool             `json:"degraded"`
	Message   string           `json:"message,omitempty"`
}
