package record_interaction_port

import (
	"context"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// RecordInteractionPort appends one interaction to the user's log.
type RecordInteractionPort interface {
	RecordInteraction(ctx context.Context, interaction *domain.Interaction) error
}
