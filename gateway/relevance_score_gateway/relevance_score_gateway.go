package relevance_score_gateway

import (
	"context"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/driver/score_model"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// RelevanceScoreGateway implements the RelevanceScorePort interface on
// top of the scorer HTTP client.
type RelevanceScoreGateway struct {
	client *score_model.Client
}

// NewRelevanceScoreGateway creates a new gateway instance.
func NewRelevanceScoreGateway(client *score_model.Client) *RelevanceScoreGateway {
	return &RelevanceScoreGateway{client: client}
}

// FetchScores returns one relevance score per input article, in input
// order. Any scorer failure surfaces as ErrModelUnavailable so callers
// can fall back without inspecting transport details.
func (g *RelevanceScoreGateway) FetchScores(ctx context.Context, articles []*domain.Article) ([]float64, error) {
	if g.client == nil {
		return nil, apperrors.ErrModelUnavailable
	}

	scores, err := g.client.FetchScores(ctx, articles)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching relevance scores", "error", err, "batch_size", len(articles))
		return nil, apperrors.ErrModelUnavailable
	}

	return scores, nil
}
