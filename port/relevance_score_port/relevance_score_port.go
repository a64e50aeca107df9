package relevance_score_port

import (
	"context"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// RelevanceScorePort defines the contract with the content-relevance
// model collaborator: one batched, order-preserving call returning a
// numeric score per article, deterministic for equal input. The
// model's internals are a black box to the ranking engine.
type RelevanceScorePort interface {
	// FetchScores returns one score per input article, in input order.
	FetchScores(ctx context.Context, articles []*domain.Article) ([]float64, error)
}
