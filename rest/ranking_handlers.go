package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Balaji-vnls/VNLS-press/di"
	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/usecase/record_interaction_usecase"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

func registerRankingRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/recommendations/personalized", handlePersonalizedRecommendations(container))
	v1.GET("/recommendations/trending", handleTrendingRecommendations(container))
	v1.GET("/recommendations/category/:category", handleCategoryRecommendations(container))
	v1.GET("/recommendations/similar/:article_id", handleSimilarRecommendations(container))
	v1.GET("/categories", handleListCategories())
	v1.POST("/interactions", handleRecordInteraction(container))
	v1.POST("/recommendations/feedback", handleRecordFeedback(container))
}

func handlePersonalizedRecommendations(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.QueryParam("user_id")
		if userID == "" {
			logger.SafeWarn("Personalized recommendations requested without user_id")
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id must not be empty"})
		}

		category, ok := parseCategoryParam(c.QueryParam("category"))
		if !ok {
			return c.JSON(http.StatusOK, emptyRankingResponse("personalized", "unknown category"))
		}

		result, err := container.PersonalizedRankingUsecase.Execute(c.Request().Context(), userID, category, parseLimit(c))
		if err != nil {
			return handleError(c, err, "personalized_recommendations")
		}

		return c.JSON(http.StatusOK, toRankingResponse(result))
	}
}

func handleTrendingRecommendations(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		// A category filter switches to the anonymous category ranking:
		// trending-by-freshness only applies across the whole pool.
		if rawCategory := c.QueryParam("category"); rawCategory != "" {
			result, err := container.CategoryRankingUsecase.Execute(c.Request().Context(), "", rawCategory, parseLimit(c))
			if err != nil {
				if apperrors.IsInvalidInput(err) {
					return c.JSON(http.StatusOK, emptyRankingResponse("trending", "unknown category"))
				}
				return handleError(c, err, "trending_recommendations")
			}
			return c.JSON(http.StatusOK, toRankingResponse(result))
		}

		result, err := container.TrendingRankingUsecase.Execute(c.Request().Context(), nil, parseLimit(c))
		if err != nil {
			return handleError(c, err, "trending_recommendations")
		}

		return c.JSON(http.StatusOK, toRankingResponse(result))
	}
}

func handleCategoryRecommendations(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawCategory := c.Param("category")

		result, err := container.CategoryRankingUsecase.Execute(c.Request().Context(), c.QueryParam("user_id"), rawCategory, parseLimit(c))
		if err != nil {
			// An unknown category yields an empty page, not an error.
			if apperrors.IsInvalidInput(err) {
				return c.JSON(http.StatusOK, emptyRankingResponse("category", "unknown category"))
			}
			return handleError(c, err, "category_recommendations")
		}

		return c.JSON(http.StatusOK, toRankingResponse(result))
	}
}

func handleSimilarRecommendations(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID := c.Param("article_id")
		if articleID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "article_id must not be empty"})
		}

		result, err := container.SimilarArticlesUsecase.Execute(c.Request().Context(), articleID, c.QueryParam("user_id"), parseLimit(c))
		if err != nil {
			return handleError(c, err, "similar_recommendations")
		}

		return c.JSON(http.StatusOK, toRankingResponse(result))
	}
}

func handleListCategories() echo.HandlerFunc {
	return func(c echo.Context) error {
		categories := domain.Categories()
		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, string(category))
		}
		return c.JSON(http.StatusOK, CategoriesResponse{Categories: names})
	}
}

func handleRecordInteraction(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload InteractionPayload
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		interaction, err := container.RecordInteractionUsecase.Execute(c.Request().Context(), record_interaction_usecase.Input{
			UserID:          payload.UserID,
			ArticleID:       payload.ArticleID,
			Kind:            payload.Type,
			DurationSeconds: payload.DurationSeconds,
			Metadata:        payload.Metadata,
		})
		if err != nil {
			return handleError(c, err, "record_interaction")
		}

		return c.JSON(http.StatusCreated, InteractionResponse{
			ID:        interaction.ID,
			UserID:    interaction.UserID,
			ArticleID: interaction.ArticleID,
			Type:      string(interaction.Kind),
			CreatedAt: interaction.CreatedAt.Format(time.RFC3339),
		})
	}
}

// handleRecordFeedback stores explicit feedback as an interaction so
// it feeds the same preference profile as implicit signals.
func handleRecordFeedback(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload FeedbackPayload
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		feedbackType := "dislike"
		if payload.Liked {
			feedbackType = "like"
		}

		interaction, err := container.RecordInteractionUsecase.Execute(c.Request().Context(), record_interaction_usecase.Input{
			UserID:    payload.UserID,
			ArticleID: payload.ArticleID,
			Kind:      string(domain.InteractionFeedback),
			Metadata:  map[string]string{"feedback_type": feedbackType},
		})
		if err != nil {
			return handleError(c, err, "record_feedback")
		}

		return c.JSON(http.StatusCreated, InteractionResponse{
			ID:        interaction.ID,
			UserID:    interaction.UserID,
			ArticleID: interaction.ArticleID,
			Type:      string(interaction.Kind),
			CreatedAt: interaction.CreatedAt.Format(time.RFC3339),
		})
	}
}

// parseCategoryParam reads an optional category filter. The second
// return is false only for a present but unknown value.
func parseCategoryParam(raw string) (*domain.Category, bool) {
	if raw == "" {
		return nil, true
	}
	category, ok := domain.ParseCategory(raw)
	if !ok {
		return nil, false
	}
	return &category, true
}

func parseLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

func emptyRankingResponse(algorithm, message string) RankingResponse {
	return RankingResponse{
		Articles:  []RankedArticleResponse{},
		Total:     0,
		Algorithm: algorithm,
		Message:   message,
	}
}
