package di

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/driver/press_db"
	"github.com/Balaji-vnls/VNLS-press/driver/score_model"
	"github.com/Balaji-vnls/VNLS-press/gateway/article_lookup_gateway"
	"github.com/Balaji-vnls/VNLS-press/gateway/candidate_articles_gateway"
	"github.com/Balaji-vnls/VNLS-press/gateway/interaction_history_gateway"
	"github.com/Balaji-vnls/VNLS-press/gateway/recommendation_log_gateway"
	"github.com/Balaji-vnls/VNLS-press/gateway/record_interaction_gateway"
	"github.com/Balaji-vnls/VNLS-press/gateway/relevance_score_gateway"
	"github.com/Balaji-vnls/VNLS-press/usecase/category_ranking_usecase"
	"github.com/Balaji-vnls/VNLS-press/usecase/personalized_ranking_usecase"
	"github.com/Balaji-vnls/VNLS-press/usecase/record_interaction_usecase"
	"github.com/Balaji-vnls/VNLS-press/usecase/similar_articles_usecase"
	"github.com/Balaji-vnls/VNLS-press/usecase/trending_ranking_usecase"
)

type ApplicationComponents struct {
	PersonalizedRankingUsecase *personalized_ranking_usecase.PersonalizedRankingUsecase
	TrendingRankingUsecase     *trending_ranking_usecase.TrendingRankingUsecase
	CategoryRankingUsecase     *category_ranking_usecase.CategoryRankingUsecase
	SimilarArticlesUsecase     *similar_articles_usecase.SimilarArticlesUsecase
	RecordInteractionUsecase   *record_interaction_usecase.RecordInteractionUsecase
	PressDBRepository          *press_db.PressDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	scoreClient := score_model.NewClient(cfg.Model.URL, cfg.Model.Timeout)

	// Concrete gateway implementations behind the port interfaces
	articleLookupGateway := article_lookup_gateway.NewArticleLookupGateway(pool)
	candidateGateway := candidate_articles_gateway.NewCandidateArticlesGateway(pool, cfg.Ranking.CandidateWindowHours)
	historyGateway := interaction_history_gateway.NewInteractionHistoryGateway(pool)
	scoreGateway := relevance_score_gateway.NewRelevanceScoreGateway(scoreClient)
	servedLogGateway := recommendation_log_gateway.NewRecommendationLogGateway(pool)
	recordGateway := record_interaction_gateway.NewRecordInteractionGateway(pool)

	personalizedUsecase := personalized_ranking_usecase.NewPersonalizedRankingUsecase(
		candidateGateway, historyGateway, scoreGateway, servedLogGateway, &cfg.Ranking)
	trendingUsecase := trending_ranking_usecase.NewTrendingRankingUsecase(
		candidateGateway, scoreGateway, &cfg.Ranking)
	categoryUsecase := category_ranking_usecase.NewCategoryRankingUsecase(
		candidateGateway, scoreGateway, personalizedUsecase, &cfg.Ranking)
	similarUsecase := similar_articles_usecase.NewSimilarArticlesUsecase(
		articleLookupGateway, candidateGateway, historyGateway, scoreGateway, &cfg.Ranking)
	recordInteractionUsecase := record_interaction_usecase.NewRecordInteractionUsecase(recordGateway)

	return &ApplicationComponents{
		PersonalizedRankingUsecase: personalizedUsecase,
		TrendingRankingUsecase:     trendingUsecase,
		CategoryRankingUsecase:     categoryUsecase,
		SimilarArticlesUsecase:     similarUsecase,
		RecordInteractionUsecase:   recordInteractionUsecase,
		PressDBRepository:          press_db.NewPressDBRepository(pool),
	}
}
