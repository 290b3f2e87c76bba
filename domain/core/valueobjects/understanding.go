package valueobjects

// CenterID is the fixed id of the implicit root of every understanding
// map. The center node lives beside the node list, never inside it.
const CenterID = "center"

// ConceptStatus grades how well a concept was explained
type ConceptStatus string

const (
	StatusMastered ConceptStatus = "mastered"
	StatusVague    ConceptStatus = "vague"
	StatusWeak     ConceptStatus = "weak"
	StatusPartial  ConceptStatus = "partial"
)

// IsValid reports whether the status is a known grade
func (s ConceptStatus) IsValid() bool {
	switch s {
	case StatusMastered, StatusVague, StatusWeak, StatusPartial:
		return true
	}
	return false
}

// UnderstandingNode is one concept in the radial understanding map.
// X and Y are percentage-of-canvas coordinates in [0,100]. RelatedTo
// lists parent ids; a node is revealed once any parent is expanded.
type UnderstandingNode struct {
	ID          string        `json:"id"`
	Concept     string        `json:"concept"`
	Status      ConceptStatus `json:"status"`
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
	Explanation string        `json:"explanation"`
	RelatedTo   []string      `json:"relatedTo"`
}

// UnderstandingMap is a tree of concept nodes rooted at a fixed center.
type UnderstandingMap struct {
	Center UnderstandingNode   `json:"center"`
	Nodes  []UnderstandingNode `json:"nodes"`
}

// NewPlaceholderCenter returns the default center used when no session
// contributes a map of its own.
func NewPlaceholderCenter(concept string) UnderstandingNode {
	return UnderstandingNode{
		ID:        CenterID,
		Concept:   concept,
		Status:    StatusMastered,
		X:         50,
		Y:         50,
		RelatedTo: []string{},
	}
}

// ParentOf resolves a parent reference. The center id resolves to the
// center node; anything else is looked up in the node list.
func (m UnderstandingMap) ParentOf(id string) (UnderstandingNode, bool) {
	if id == CenterID {
		return m.Center, true
	}
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return UnderstandingNode{}, false
}

// HasChildren reports whether any node lists the given id as a parent
func (m UnderstandingMap) HasChildren(id string) bool {
	for _, n := range m.Nodes {
		for _, parent := range n.RelatedTo {
			if parent == id {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the map
func (m UnderstandingMap) Clone() UnderstandingMap {
	clone := UnderstandingMap{
		Center: cloneNode(m.Center),
		Nodes:  make([]UnderstandingNode, len(m.Nodes)),
	}
	for i, n := range m.Nodes {
		clone.Nodes[i] = cloneNode(n)
	}
	return clone
}

func cloneNode(n UnderstandingNode) UnderstandingNode {
	related := make([]string, len(n.RelatedTo))
	copy(related, n.RelatedTo)
	n.RelatedTo = related
	return n
}
