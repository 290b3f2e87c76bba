package queries

import (
	"teachback-backend/domain/core/valueobjects"
	"teachback-backend/domain/services"
	pkgerrors "teachback-backend/pkg/errors"
)

// GetUnderstandingMapQuery fetches the progressively-disclosed map view
type GetUnderstandingMapQuery struct {
	UserID string `json:"user_id" validate:"required"`
	// Scope is "all" or a session id
	Scope string `json:"scope" validate:"required"`
}

// Validate validates the query
func (q GetUnderstandingMapQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if q.Scope == "" {
		return pkgerrors.NewValidationError("scope is required")
	}
	return nil
}

// MapView is what the map screen renders: the center, the currently
// revealed nodes, the edges between them and the interaction state.
type MapView struct {
	Center         valueobjects.UnderstandingNode   `json:"center"`
	VisibleNodes   []valueobjects.UnderstandingNode `json:"visible_nodes"`
	Connectors     []services.Connector             `json:"connectors"`
	ExpandedNodes  []string                         `json:"expanded_nodes"`
	SelectedNodeID string                           `json:"selected_node_id,omitempty"`
	TotalNodes     int                              `json:"total_nodes"`
}
