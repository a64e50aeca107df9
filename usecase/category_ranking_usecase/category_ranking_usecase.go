// Package category_ranking_usecase serves one category's feed. With a
// user it delegates to the personalized pipeline restricted to that
// category; anonymously it ranks by relevance and freshness alone.
package category_ranking_usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/port/candidate_articles_port"
	"github.com/Balaji-vnls/VNLS-press/port/relevance_score_port"
	"github.com/Balaji-vnls/VNLS-press/ranking"
	"github.com/Balaji-vnls/VNLS-press/usecase/personalized_ranking_usecase"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
	"github.com/Balaji-vnls/VNLS-press/utils/metrics"
)

const AlgorithmName = "category"

type CategoryRankingUsecase struct {
	candidateGateway candidate_articles_port.CandidateArticlesPort
	scoreGateway     relevance_score_port.RelevanceScorePort
	personalized     *personalized_ranking_usecase.PersonalizedRankingUsecase
	engine           *ranking.Engine
	cfg              *config.RankingConfig
}

func NewCategoryRankingUsecase(
	candidateGateway candidate_articles_port.CandidateArticlesPort,
	scoreGateway relevance_score_port.RelevanceScorePort,
	personalized *personalized_ranking_usecase.PersonalizedRankingUsecase,
	cfg *config.RankingConfig,
) *CategoryRankingUsecase {
	return &CategoryRankingUsecase{
		candidateGateway: candidateGateway,
		scoreGateway:     scoreGateway,
		personalized:     personalized,
		engine:           ranking.NewEngine(),
		cfg:              cfg,
	}
}

// Execute ranks articles of one category. An empty userID serves the
// anonymous relevance-plus-freshness ordering. An unknown category is
// rejected with ErrInvalidInput.
func (u *CategoryRankingUsecase) Execute(ctx context.Context, userID string, rawCategory string, limit int) (*domain.RankingResult, error) {
	category, ok := domain.ParseCategory(rawCategory)
	if !ok {
		return nil, fmt.Errorf("unknown category %q: %w", rawCategory, apperrors.ErrInvalidInput)
	}

	if userID != "" {
		result, err := u.personalized.Execute(ctx, userID, &category, limit)
		if err != nil {
			return nil, err
		}
		result.Algorithm = AlgorithmName
		return result, nil
	}

	return u.executeAnonymous(ctx, category, limit)
}

func (u *CategoryRankingUsecase) executeAnonymous(ctx context.Context, category domain.Category, limit int) (*domain.RankingResult, error) {
	start := time.Now()
	limit = u.clampLimit(limit)

	candidates, err := u.candidateGateway.FetchCandidateArticles(ctx, &category, limit*2)
	if err != nil {
		logger.SafeErrorContext(ctx, "Failed to fetch category candidates", "error", err, "category", category)
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

func (u *CategoryRankingUsecase) score(ctx context.Context, candidates []*domain.Article, limit int) *domain.RankingResult {
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
		Articles:  u.engine.RankByBaseScore(candidates, baseScores, limit),
		Algorithm: AlgorithmName,
	}
}

func (u *CategoryRankingUsecase) clampLimit(limit int) int {
	if limit <= 0 {
		return u.cfg.DefaultTopK
	}
	if limit > u.cfg.MaxTopK {
		return u.cfg.MaxTopK
	}
	return limit
}
