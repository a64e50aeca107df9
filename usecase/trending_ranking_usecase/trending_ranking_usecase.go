// Package trending_ranking_usecase produces the non-personalized
// trending ranking: relevance, freshness, and source credibility with
// no user profile involved.
package trending_ranking_usecase

import (
	"context"
	"time"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/port/candidate_articles_port"
	"github.com/Balaji-vnls/VNLS-press/port/relevance_score_port"
	"github.com/Balaji-vnls/VNLS-press/ranking"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
	"github.com/Balaji-vnls/VNLS-press/utils/metrics"
)

const AlgorithmName = "trending"

type TrendingRankingUsecase struct {
	candidateGateway candidate_articles_port.CandidateArticlesPort
	scoreGateway     relevance_score_port.RelevanceScorePort
	engine           *ranking.Engine
	cfg              *config.RankingConfig
}

func NewTrendingRankingUsecase(
	candidateGateway candidate_articles_port.CandidateArticlesPort,
	scoreGateway relevance_score_port.RelevanceScorePort,
	cfg *config.RankingConfig,
) *TrendingRankingUsecase {
	return &TrendingRankingUsecase{
		candidateGateway: candidateGateway,
		scoreGateway:     scoreGateway,
		engine:           ranking.NewEngine(),
		cfg:              cfg,
	}
}

// Execute ranks recent articles by trending score. Identical for every
// caller, so the result carries no served log and no profile.
func (u *TrendingRankingUsecase) Execute(ctx context.Context, category *domain.Category, limit int) (*domain.RankingResult, error) {
	start := time.Now()
	limit = u.clampLimit(limit)

	candidates, err := u.candidateGateway.FetchCandidateArticles(ctx, category, limit*2)
	if err != nil {
		logger.SafeErrorContext(ctx, "Failed to fetch trending candidates", "error", err)
		return nil, err
	}

	candidates = ranking.Deduplicate(candidates)
	if len(candidates) == 0 {
		return &domain.RankingResult{
			Articles:  []*domain.RankedArticle{},
			Algorithm: AlgorithmName,
			Message:   "no recent articles available",
		}, nil
	}

	result := u.score(ctx, candidates, limit)

	metrics.RecordServed(AlgorithmName, len(result.Articles))
	metrics.ObserveRankingDuration(AlgorithmName, time.Since(start))

	return result, nil
}

func (u *TrendingRankingUsecase) score(ctx context.Context, candidates []*domain.Article, limit int) *domain.RankingResult {
	scores, err := u.scoreGateway.FetchScores(ctx, candidates)
	if err != nil {
		logger.SafeWarnContext(ctx, "Relevance model unavailable, serving fallback order", "error", err)
		metrics.RecordDegraded(AlgorithmName, "model_unavailable")
		return &domain.RankingResult{
			Articles:  ranking.Fallback(candidates, limit),
			Algorithm: AlgorithmName,
			Degraded:  true,
			Message:   "relevance model unavailable; serving recent articles",
		}
	}

	baseScores := make(map[string]float64, len(candidates))
	for i, article := range candidates {
		baseScores[article.ID] = scores[i]
	}

	return &domain.RankingResult{
		Articles:  u.engine.RankTrending(candidates, baseScores, limit),
		Algorithm: AlgorithmName,
	}
}

func (u *TrendingRankingUsecase) clampLimit(limit int) int {
	if limit <= 0 {
		return u.cfg.DefaultTopK
	}
	if limit > u.cfg.MaxTopK {
		return u.cfg.MaxTopK
	}
	return limit
}
