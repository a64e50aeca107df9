package relevance_score_gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balaji-vnls/VNLS-press/domain"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
)

func TestRelevanceScoreGateway_NilClient(t *testing.T) {
	gateway := &RelevanceScoreGateway{client: nil}

	_, err := gateway.FetchScores(context.Background(), []*domain.Article{{ID: "a1"}})
	require.Error(t, err)
	assert.True(t, apperrors.IsModelError(err))
}
