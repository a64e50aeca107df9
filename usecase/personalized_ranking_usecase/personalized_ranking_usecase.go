// Package personalized_ranking_usecase orchestrates one personalized
// ranking call: candidate and history fan-out, profile building,
// relevance scoring with fallback, the scoring pass, and the
// fire-and-forget served log.
package personalized_ranking_usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/port/candidate_articles_port"
	"github.com/Balaji-vnls/VNLS-press/port/interaction_history_port"
	"github.com/Balaji-vnls/VNLS-press/port/recommendation_log_port"
	"github.com/Balaji-vnls/VNLS-press/port/relevance_score_port"
	"github.com/Balaji-vnls/VNLS-press/ranking"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
	"github.com/Balaji-vnls/VNLS-press/utils/metrics"
)

const AlgorithmName = "personalized"

type PersonalizedRankingUsecase struct {
	candidateGateway candidate_articles_port.CandidateArticlesPort
	historyGateway   interaction_history_port.InteractionHistoryPort
	scoreGateway     relevance_score_port.RelevanceScorePort
	servedLogGateway recommendation_log_port.RecommendationLogPort
	engine           *ranking.Engine
	cfg              *config.RankingConfig
}

func NewPersonalizedRankingUsecase(
	candidateGateway candidate_articles_port.CandidateArticlesPort,
	historyGateway interaction_history_port.InteractionHistoryPort,
	scoreGateway relevance_score_port.RelevanceScorePort,
	servedLogGateway recommendation_log_port.RecommendationLogPort,
	cfg *config.RankingConfig,
) *PersonalizedRankingUsecase {
	return &PersonalizedRankingUsecase{
		candidateGateway: candidateGateway,
		historyGateway:   historyGateway,
		scoreGateway:     scoreGateway,
		servedLogGateway: servedLogGateway,
		engine:           ranking.NewEngine(),
		cfg:              cfg,
	}
}

// Execute produces a personalized ranking for the user. A nil category
// draws candidates from every category. The candidate fetch is the
// only hard dependency: history and scorer failures degrade the result
// instead of failing it.
func (u *PersonalizedRankingUsecase) Execute(ctx context.Context, userID string, category *domain.Category, limit int) (*domain.RankingResult, error) {
	start := time.Now()
	limit = u.clampLimit(limit)

	candidates, profile, err := u.gatherInputs(ctx, userID, category, limit)
	if err != nil {
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

	result := u.score(ctx, candidates, profile, limit)

	u.logServed(ctx, userID, result)

	metrics.RecordServed(AlgorithmName, len(result.Articles))
	metrics.ObserveRankingDuration(AlgorithmName, time.Since(start))

	return result, nil
}

// gatherInputs fetches candidates and interaction history
// concurrently. History failures are swallowed: the user falls back to
// the cold-start profile.
func (u *PersonalizedRankingUsecase) gatherInputs(ctx context.Context, userID string, category *domain.Category, limit int) ([]*domain.Article, *domain.PreferenceProfile, error) {
	var (
		candidates     []*domain.Article
		interactions   []*domain.Interaction
		categoryCounts map[domain.Category]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fetched, err := u.candidateGateway.FetchCandidateArticles(gctx, category, limit*u.cfg.CandidateMultiplier)
		if err != nil {
			return err
		}
		candidates = fetched
		return nil
	})

	g.Go(func() error {
		fetched, err := u.historyGateway.FetchUserInteractions(gctx, userID, u.cfg.InteractionLimit, u.cfg.LookbackDays)
		if err != nil {
			logger.SafeWarnContext(gctx, "Interaction history unavailable, using cold-start profile", "error", err, "user_id", userID)
			return nil
		}
		interactions = fetched

		counts, err := u.historyGateway.FetchUserCategoryCounts(gctx, userID)
		if err != nil {
			logger.SafeWarnContext(gctx, "Category counts unavailable", "error", err, "user_id", userID)
			return nil
		}
		categoryCounts = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.SafeErrorContext(ctx, "Failed to fetch ranking candidates", "error", err, "user_id", userID)
		return nil, nil, err
	}

	return candidates, ranking.BuildPreferenceProfile(interactions, categoryCounts), nil
}

// score runs the relevance model over the candidates and applies the
// full personalized pass. A scorer failure falls back to the
// candidates' original order, truncated, with the result flagged
// degraded.
func (u *PersonalizedRankingUsecase) score(ctx context.Context, candidates []*domain.Article, profile *domain.PreferenceProfile, limit int) *domain.RankingResult {
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
		Articles:  u.engine.RankPersonalized(candidates, baseScores, profile, limit),
		Algorithm: AlgorithmName,
	}
}

// logServed records what was served without blocking or failing the
// response. The detached context survives the request's cancellation.
func (u *PersonalizedRankingUsecase) logServed(ctx context.Context, userID string, result *domain.RankingResult) {
	if len(result.Articles) == 0 {
		return
	}

	articleIDs := make([]string, 0, len(result.Articles))
	scores := make([]float64, 0, len(result.Articles))
	for _, ranked := range result.Articles {
		articleIDs = append(articleIDs, ranked.Article.ID)
		scores = append(scores, ranked.FinalScore)
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := u.servedLogGateway.RecordServed(detached, userID, articleIDs, scores, result.Algorithm); err != nil {
			logger.SafeWarnContext(detached, "Failed to record served recommendations", "error", err, "user_id", userID)
			metrics.RecordServedLogFailure()
		}
	}()
}

func (u *PersonalizedRankingUsecase) clampLimit(limit int) int {
	if limit <= 0 {
		return u.cfg.DefaultTopK
	}
	if limit > u.cfg.MaxTopK {
		return u.cfg.MaxTopK
	}
	return limit
}
