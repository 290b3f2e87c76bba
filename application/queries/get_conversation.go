// Package queries defines the read operations of the application layer.
package queries

import (
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// GetConversationQuery fetches the live conversation and gate state
type GetConversationQuery struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate validates the query
func (q GetConversationQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	return nil
}

// ConversationView is the live conversation read model
type ConversationView struct {
	Theme       string                     `json:"theme"`
	Messages    []valueobjects.ChatMessage `json:"messages"`
	Turn        int                        `json:"turn"`
	CanAnalyze  bool                       `json:"can_analyze"`
	IsAnalyzing bool                       `json:"is_analyzing"`
	IsAnalyzed  bool                       `json:"is_analyzed"`
}
