package ranking

import (
	"testing"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name       string
		titles     []string
		wantTitles []string
	}{
		{
			name:       "empty input yields empty output",
			titles:     nil,
			wantTitles: []string{},
		},
		{
			name:       "no duplicates preserved as-is",
			titles:     []string{"Alpha", "Beta", "Gamma"},
			wantTitles: []string{"Alpha", "Beta", "Gamma"},
		},
		{
			name:       "case and whitespace variants collapse to first occurrence",
			titles:     []string{"Fed Holds Rates", "  fed holds rates ", "FED HOLDS RATES", "Other story"},
			wantTitles: []string{"Fed Holds Rates", "Other story"},
		},
		{
			name:       "order of first occurrence preserved",
			titles:     []string{"B", "A", "B", "C", "A"},
			wantTitles: []string{"B", "A", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := make([]*domain.Article, 0, len(tt.titles))
			for _, title := range tt.titles {
				articles = append(articles, &domain.Article{Title: title})
			}

			got := Deduplicate(articles)

			gotTitles := make([]string, 0, len(got))
			for _, article := range got {
				gotTitles = append(gotTitles, article.Title)
			}
			assert.Equal(t, tt.wantTitles, gotTitles)
		})
	}
}
