// Package score_model is the HTTP client for the content-relevance
// scorer sidecar. The model is a black box: the contract is one
// batched, order-preserving call returning a score per article.
package score_model

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type scoreArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

type scoreRequest struct {
	Articles []scoreArticle `json:"articles"`
}

type scoreResponse struct {
	Scores []float64 `json:"scores"`
}

// FetchScores posts the batch to the scorer and returns one score per
// article, in input order.
func (c *Client) FetchScores(ctx context.Context, articles []*domain.Article) ([]float64, error) {
	if len(articles) == 0 {
		return []float64{}, nil
	}

	reqBody := scoreRequest{Articles: make([]scoreArticle, 0, len(articles))}
	for _, article := range articles {
		reqBody.Articles = append(reqBody.Articles, scoreArticle{
			ID:       article.ID,
			Title:    article.Title,
			Summary:  article.Summary,
			Category: string(article.Category),
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scores", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalAPIError("scorer request failed", err, map[string]interface{}{
			"batch_size": len(articles),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalAPIError("scorer returned non-OK status", nil, map[string]interface{}{
			"status":     resp.StatusCode,
			"batch_size": len(articles),
		})
	}

	var body scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.ExternalAPIError("scorer response malformed", err, nil)
	}

	if len(body.Scores) != len(articles) {
		return nil, apperrors.ExternalAPIError("scorer response length mismatch", nil, map[string]interface{}{
			"want": len(articles),
			"got":  len(body.Scores),
		})
	}

	return body.Scores, nil
}
