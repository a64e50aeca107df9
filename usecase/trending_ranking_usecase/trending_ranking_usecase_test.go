package trending_ranking_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/mocks"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

func testRankingConfig() *config.RankingConfig {
	return &config.RankingConfig{
		DefaultTopK: 20,
		MaxTopK:     100,
	}
}

func TestTrendingRankingUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCandidates := mocks.NewMockCandidateArticlesPort(ctrl)
	mockScores := mocks.NewMockRelevanceScorePort(ctrl)

	now := time.Now().UTC()
	candidates := []*domain.Article{
		{ID: "a", Title: "Old from strong source", Source: "Reuters", Category: domain.CategoryScience, PublishedAt: now.Add(-40 * time.Hour)},
		{ID: "b", Title: "Fresh from weak source", Source: "Unknown Blog", Category: domain.CategoryScience, PublishedAt: now.Add(-30 * time.Minute)},
	}

	mockCandidates.EXPECT().
		FetchCandidateArticles(gomock.Any(), nil, 20).
		Return(candidates, nil).Times(1)
	mockScores.EXPECT().
		FetchScores(gomock.Any(), gomock.Len(2)).
		Return([]float64{0.5, 0.5}, nil).Times(1)

	usecase := NewTrendingRankingUsecase(mockCandidates, mockScores, testRankingConfig())

	result, err := usecase.Execute(context.Background(), nil, 10)
	require.NoError(t, err)

	assert.Equal(t, "trending", result.Algorithm)
	assert.False(t, result.Degraded)
	require.Len(t, result.Articles, 2)

	// Equal relevance: the fresh article's recency edge outweighs the
	// other's source credibility under the 0.3 vs 0.1 weighting.
	assert.Equal(t, "b", result.Articles[0].Article.ID)
	assert.Equal(t, "a", result.Articles[1].Article.ID)
}

func TestTrendingRankingUsecase_Execute_ModelFailureFallsBack(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCandidates := mocks.NewMockCandidateArticlesPort(ctrl)
	mockScores := mocks.NewMockRelevanceScorePort(ctrl)

	now := time.Now().UTC()
	candidates := []*domain.Article{
		{ID: "a", Title: "first", Source: "BBC", PublishedAt: now},
		{ID: "b", Title: "second", Source: "CNN", PublishedAt: now},
	}

	mockCandidates.EXPECT().
		FetchCandidateArticles(gomock.Any(), nil, gomock.Any()).
		Return(candidates, nil).Times(1)
	mockScores.EXPECT().
		FetchScores(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("scorer down")).Times(1)

	usecase := NewTrendingRankingUsecase(mockCandidates, mockScores, testRankingConfig())

	result, err := usecase.Execute(context.Background(), nil, 10)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	require.Len(t, result.Articles, 2)
	assert.Equal(t, "a", result.Articles[0].Article.ID)
}

func TestTrendingRankingUsecase_Execute_CandidateFailure(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCandidates := mocks.NewMockCandidateArticlesPort(ctrl)
	mockScores := mocks.NewMockRelevanceScorePort(ctrl)

	mockCandidates.EXPECT().
		FetchCandidateArticles(gomock.Any(), nil, gomock.Any()).
		Return(nil, errors.New("storage unavailable")).Times(1)

	usecase := NewTrendingRankingUsecase(mockCandidates, mockScores, testRankingConfig())

	_, err := usecase.Execute(context.Background(), nil, 10)
	require.Error(t, err)
}
