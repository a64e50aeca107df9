package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Balaji-vnls/VNLS-press/domain"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// handleError maps layered errors onto HTTP responses. Sentinel checks
// come first so wrapped gateway errors keep their meaning across
// layers.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	switch {
	case apperrors.IsInvalidInput(err):
		logger.SafeWarnContext(ctx, "Rejected request", "operation", operation, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case apperrors.IsArticleNotFound(err):
		logger.SafeWarnContext(ctx, "Article not found", "operation", operation, "error", err)
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	case apperrors.IsStorageError(err):
		logger.SafeErrorContext(ctx, "Storage unavailable", "operation", operation, "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "storage unavailable"})
	default:
		logger.SafeErrorContext(ctx, "Unhandled error", "operation", operation, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func toRankingResponse(result *domain.RankingResult) RankingResponse {
	articles := make([]RankedArticleResponse, 0, len(result.Articles))
	for i, ranked := range result.Articles {
		articles = append(articles, RankedArticleResponse{
			Position:   i + 1,
			Article:    toArticleResponse(ranked.Article),
			FinalScore: ranked.FinalScore,
			Breakdown:  ranked.Breakdown,
		})
	}

	return RankingResponse{
		Articles:  articles,
		Total:     len(articles),
		Algorithm: result.Algorithm,
		Degraded:  result.Degraded,
		Message:   result.Message,
	}
}

func toArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Summary:     article.Summary,
		URL:         article.URL,
		Source:      article.Source,
		Category:    string(article.Category),
		PublishedAt: article.PublishedAt.UTC().Format(time.RFC3339),
		ImageURL:    article.ImageURL,
		Author:      article.Author,
	}
}
