package record_interaction_usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/port/record_interaction_port"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// RecordInteractionUsecase validates and appends one user interaction.
type RecordInteractionUsecase struct {
	recordGateway record_interaction_port.RecordInteractionPort
}

func NewRecordInteractionUsecase(recordGateway record_interaction_port.RecordInteractionPort) *RecordInteractionUsecase {
	return &RecordInteractionUsecase{recordGateway: recordGateway}
}

// Input is the caller-supplied portion of an interaction. ID and
// timestamp are assigned here.
type Input struct {
	UserID          string
	ArticleID       string
	Kind            string
	DurationSeconds float64
	Metadata        map[string]string
}

// Execute validates the input and appends the interaction, returning
// the stored record.
func (u *RecordInteractionUsecase) Execute(ctx context.Context, input Input) (*domain.Interaction, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, fmt.Errorf("user_id must not be empty: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(input.ArticleID) == "" {
		return nil, fmt.Errorf("article_id must not be empty: %w", apperrors.ErrInvalidInput)
	}

	kind, ok := domain.ParseInteractionKind(input.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown interaction type %q: %w", input.Kind, apperrors.ErrInvalidInput)
	}
	if input.DurationSeconds < 0 {
		return nil, fmt.Errorf("duration must not be negative: %w", apperrors.ErrInvalidInput)
	}

	interaction := &domain.Interaction{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		ArticleID:       input.ArticleID,
		Kind:            kind,
		DurationSeconds: input.DurationSeconds,
		Metadata:        input.Metadata,
		CreatedAt:       time.Now().UTC(),
	}

	if err := u.recordGateway.RecordInteraction(ctx, interaction); err != nil {
		logger.SafeErrorContext(ctx, "Failed to record interaction", "error", err, "user_id", input.UserID)
		return nil, err
	}

	return interaction, nil
}
