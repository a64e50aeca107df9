// Package similar_articles_usecase serves articles similar to a given
// reference article: same category, reference excluded, ranked
// personalized when a user is present and by relevance alone
// otherwise.
package similar_articles_usecase

import (
	"context"
	"time"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/port/article_lookup_port"
	"github.com/Balaji-vnls/VNLS-press/port/candidate_articles_port"
	"github.com/Balaji-vnls/VNLS-press/port/interaction_history_port"
	"github.com/Balaji-vnls/VNLS-press/port/relevance_score_port"
	"github.com/Balaji-vnls/VNLS-press/ranking"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
	"github.com/Balaji-vnls/VNLS-press/utils/metrics"
)

const AlgorithmName = "similar"

type SimilarArticlesUsecase struct {
	articleGateway   article_lookup_port.ArticleLookupPort
	candidateGateway candidate_articles_port.CandidateArticlesPort
	historyGateway   interaction_history_port.InteractionHistoryPort
	scoreGateway     relevance_score_port.RelevanceScorePort
	engine           *ranking.Engine
	cfg              *config.RankingConfig
}

func NewSimilarArticlesUsecase(
	articleGateway article_lookup_port.ArticleLookupPort,
	candidateGateway candidate_articles_port.CandidateArticlesPort,
	historyGateway interaction_history_port.InteractionHistoryPort,
	scoreGateway relevance_score_port.RelevanceScorePort,
	cfg *config.RankingConfig,
) *SimilarArticlesUsecase {
	return &SimilarArticlesUsecase{
		articleGateway:   articleGateway,
		candidateGateway: candidateGateway,
		historyGateway:   historyGateway,
		scoreGateway:     scoreGateway,
		engine:           ranking.NewEngine(),
		cfg:              cfg,
	}
}

// Execute ranks articles from the reference article's category,
// excluding the reference itself. A missing reference surfaces as
// ErrArticleNotFound from the lookup gateway.
func (u *SimilarArticlesUsecase) Execute(ctx context.Context, articleID string, userID string, limit int) (*domain.RankingResult, error) {
	start := time.Now()
	limit = u.clampLimit(limit)

	reference, err := u.articleGateway.FetchArticleByID(ctx, articleID)
	if err != nil {
		logger.SafeWarnContext(ctx, "Failed to resolve reference article", "error", err, "article_id", articleID)
		return nil, err
	}

	candidates, err := u.candidateGateway.FetchCandidateArticles(ctx, &reference.Category, limit*2)
	if err != nil {
		logger.SafeErrorContext(ctx, "Failed to fetch similar candidates", "error", err, "article_id", articleID)
		return nil, err
	}

	candidates = excludeReference(candidates, reference)
	candidates = ranking.Deduplicate(candidates)
	if len(candidates) == 0 {
		return &domain.RankingResult{
			Articles:  []*domain.RankedArticle{},
			Algorithm: AlgorithmName,
			Message:   "no similar articles available",
		}, nil
	}

	result := u.score(ctx, candidates, userID, limit)

	metrics.RecordServed(AlgorithmName, len(result.Articles))
	metrics.ObserveRankingDuration(AlgorithmName, time.Since(start))

	return result, nil
}

func (u *SimilarArticlesUsecase) score(ctx context.Context, candidates []*domain.Article, userID string, limit int) *domain.RankingResult {
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

	if userID == "" {
		return &domain.RankingResult{
			Articles:  u.engine.RankByBaseScore(candidates, baseScores, limit),
			Algorithm: AlgorithmName,
		}
	}

	return &domain.RankingResult{
		Articles:  u.engine.RankPersonalized(candidates, baseScores, u.buildProfile(ctx, userID), limit),
		Algorithm: AlgorithmName,
	}
}

// buildProfile derives the user's preference profile, falling back to
// the cold-start defaults when history is unavailable.
func (u *SimilarArticlesUsecase) buildProfile(ctx context.Context, userID string) *domain.PreferenceProfile {
	interactions, err := u.historyGateway.FetchUserInteractions(ctx, userID, u.cfg.InteractionLimit, u.cfg.LookbackDays)
	if err != nil {
		logger.SafeWarnContext(ctx, "Interaction history unavailable, using cold-start profile", "error", err, "user_id", userID)
		return ranking.BuildPreferenceProfile(nil, nil)
	}

	counts, err := u.historyGateway.FetchUserCategoryCounts(ctx, userID)
	if err != nil {
		logger.SafeWarnContext(ctx, "Category counts unavailable", "error", err, "user_id", userID)
		counts = nil
	}

	return ranking.BuildPreferenceProfile(interactions, counts)
}

// excludeReference drops the reference article itself and any copy of
// it under a different ID.
func excludeReference(candidates []*domain.Article, reference *domain.Article) []*domain.Article {
	referenceTitle := reference.NormalizedTitle()
	kept := make([]*domain.Article, 0, len(candidates))
	for _, article := range candidates {
		if article.ID == reference.ID || article.NormalizedTitle() == referenceTitle {
			continue
		}
		kept = append(kept, article)
	}
	return kept
}

func (u *SimilarArticlesUsecase) clampLimit(limit int) int {
	if limit <= 0 {
		return u.cfg.DefaultTopK
	}
	if limit > u.cfg.MaxTopK {
		return u.cfg.MaxTopK
	}
	return limit
}
