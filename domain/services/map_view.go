package services

import (
	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
)

// Connector is a rendered edge between a visible node and one of its
// expanded parents. Edges are never drawn to or from a hidden node.
type Connector struct {
	FromID string  `json:"fromId"`
	ToID   string  `json:"toId"`
	FromX  float64 `json:"fromX"`
	FromY  float64 `json:"fromY"`
	ToX    float64 `json:"toX"`
	ToY    float64 `json:"toY"`
}

// MapViewService computes the progressively-disclosed view of an
// understanding map from the expansion set.
type MapViewService struct{}

// NewMapViewService creates a map view service
func NewMapViewService() *MapViewService {
	return &MapViewService{}
}

// Merge combines the maps of the given sessions into one. Node sets are
// concatenated without deduplication: each session's subtree stays
// independent even when concepts overlap. The center comes from the
// first session, or a placeholder when there are none.
func (s *MapViewService) Merge(sessions []*entities.Session, placeholderConcept string) valueobjects.UnderstandingMap {
	if len(sessions) == 0 {
		return valueobjects.UnderstandingMap{
			Center: valueobjects.NewPlaceholderCenter(placeholderConcept),
			Nodes:  []valueobjects.UnderstandingNode{},
		}
	}

	merged := valueobjects.UnderstandingMap{
		Center: sessions[0].Map().Center,
		Nodes:  []valueobjects.UnderstandingNode{},
	}
	for _, session := range sessions {
		merged.Nodes = append(merged.Nodes, session.Map().Nodes...)
	}
	return merged
}

// VisibleNodes returns the nodes revealed by the expansion set: a node
// is visible iff at least one of its parents is expanded. The center is
// always implicitly visible and never part of the node list.
func (s *MapViewService) VisibleNodes(m valueobjects.UnderstandingMap, expanded map[string]bool) []valueobjects.UnderstandingNode {
	visible := []valueobjects.UnderstandingNode{}
	for _, node := range m.Nodes {
		for _, parent := range node.RelatedTo {
			if expanded[parent] {
				visible = append(visible, node)
				break
			}
		}
	}
	return visible
}

// Connectors returns the edges to render: one per (visible node,
// expanded parent) pair whose parent resolves in the map.
func (s *MapViewService) Connectors(m valueobjects.UnderstandingMap, expanded map[string]bool) []Connector {
	connectors := []Connector{}
	for _, node := range s.VisibleNodes(m, expanded) {
		for _, parentID := range node.RelatedTo {
			if !expanded[parentID] {
				continue
			}
			parent, ok := m.ParentOf(parentID)
			if !ok {
				continue
			}
			connectors = append(connectors, Connector{
				FromID: parentID,
				ToID:   node.ID,
				FromX:  parent.X,
				FromY:  parent.Y,
				ToX:    node.X,
				ToY:    node.Y,
			})
		}
	}
	return connectors
}
