package entities

import (
	"strings"
	"sync"

	"teachback-backend/domain/config"
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// Workspace holds the live, pre-analysis state of one user's teaching
// session: the active theme, the growing conversation, the analysis
// flags, and the map-view selection/expansion state.
//
// A workspace is mutated by overlapping HTTP requests for the same
// user, so it guards its own state. Message appends are ordered: the
// user message lands synchronously, the assistant reply (or fallback)
// lands when the round trip resolves, always after its trigger.
type Workspace struct {
	mu sync.Mutex

	userID       string
	theme        string
	messages     []valueobjects.ChatMessage
	isAnalyzing  bool
	isAnalyzed   bool
	pendingSends int

	selectedNodeID string
	expanded       map[string]bool

	cfg *config.DomainConfig
}

// NewWorkspace creates an empty workspace for a user
func NewWorkspace(userID string, cfg *config.DomainConfig) (*Workspace, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &Workspace{
		userID:   userID,
		messages: []valueobjects.ChatMessage{},
		expanded: map[string]bool{valueobjects.CenterID: true},
		cfg:      cfg,
	}, nil
}

// UserID returns the owner's ID
func (w *Workspace) UserID() string {
	return w.userID
}

// ResetForTheme replaces the conversation with the seed conversation
// for a new theme, clears the analysis flags, clears the map selection
// and resets expansion to the center.
func (w *Workspace) ResetForTheme(theme string, seed []valueobjects.ChatMessage) error {
	theme = strings.TrimSpace(theme)
	if theme == "" && !w.cfg.AllowEmptyTheme {
		return pkgerrors.NewValidationError("theme cannot be empty")
	}
	if len(theme) > w.cfg.MaxThemeLength {
		return pkgerrors.NewValidationError("theme is too long")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.theme = theme
	w.messages = make([]valueobjects.ChatMessage, len(seed))
	copy(w.messages, seed)
	w.isAnalyzed = false
	w.isAnalyzing = false
	w.selectedNodeID = ""
	w.expanded = map[string]bool{valueobjects.CenterID: true}

	return nil
}

// Restore loads a previous session's conversation back into the
// workspace so the user can continue teaching. Analysis and selection
// state are cleared; the session itself is untouched.
func (w *Workspace) Restore(theme string, messages []valueobjects.ChatMessage) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.theme = theme
	w.messages = make([]valueobjects.ChatMessage, len(messages))
	copy(w.messages, messages)
	w.isAnalyzed = false
	w.isAnalyzing = false
	w.selectedNodeID = ""
	w.expanded = map[string]bool{valueobjects.CenterID: true}
}

// Theme returns the active theme
func (w *Workspace) Theme() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.theme
}

// Messages returns a copy of the live conversation
func (w *Workspace) Messages() []valueobjects.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()

	messages := make([]valueobjects.ChatMessage, len(w.messages))
	copy(messages, w.messages)
	return messages
}

// CurrentTurn returns the rally number of the live conversation
func (w *Workspace) CurrentTurn() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return valueobjects.CurrentTurn(w.messages)
}

// AppendUserMessage appends a user message with the freshly computed
// turn and marks a send as outstanding. Blank text is rejected before
// anything is appended.
func (w *Workspace) AppendUserMessage(text string) (valueobjects.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return valueobjects.ChatMessage{}, pkgerrors.NewValidationError("message text cannot be empty")
	}
	if len(text) > w.cfg.MaxMessageLength {
		return valueobjects.ChatMessage{}, pkgerrors.NewValidationError("message is too long")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	msg, err := valueobjects.NewChatMessage(valueobjects.RoleUser, text, len(w.messages)+1)
	if err != nil {
		return valueobjects.ChatMessage{}, err
	}

	w.messages = append(w.messages, msg)
	w.pendingSends++
	return msg, nil
}

// AppendAssistantReply appends the assistant's reply (or the fallback
// text) and marks the triggering send as resolved. The reply lands on
// whatever the conversation is at resolution time.
func (w *Workspace) AppendAssistantReply(text string) valueobjects.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()

	msg := valueobjects.ChatMessage{
		Role: valueobjects.RoleAssistant,
		Text: text,
		Turn: valueobjects.TurnOf(len(w.messages) + 1),
	}
	w.messages = append(w.messages, msg)
	if w.pendingSends > 0 {
		w.pendingSends--
	}
	return msg
}

// IsAnalyzing reports whether an analysis is in flight
func (w *Workspace) IsAnalyzing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isAnalyzing
}

// IsAnalyzed reports whether the current conversation was analyzed
func (w *Workspace) IsAnalyzed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isAnalyzed
}

// CanAnalyze reports whether the gate is open: enough rallies and no
// prior analysis of this conversation.
func (w *Workspace) CanAnalyze() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canAnalyzeLocked()
}

func (w *Workspace) canAnalyzeLocked() bool {
	return valueobjects.CurrentTurn(w.messages) >= w.cfg.MinAnalyzeTurn && !w.isAnalyzed
}

// BeginAnalysis accepts an analysis trigger. It fails while the gate is
// closed, while another analysis is running, or while a send is still
// outstanding, and returns a frozen conversation snapshot on success.
func (w *Workspace) BeginAnalysis() ([]valueobjects.ChatMessage, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.canAnalyzeLocked() {
		return nil, pkgerrors.NewConflictError("not enough conversation to analyze")
	}
	if w.isAnalyzing {
		return nil, pkgerrors.NewConflictError("analysis already in progress")
	}
	if w.pendingSends > 0 {
		return nil, pkgerrors.NewConflictError("a message is still awaiting its reply")
	}

	w.isAnalyzing = true

	snapshot := make([]valueobjects.ChatMessage, len(w.messages))
	copy(snapshot, w.messages)
	return snapshot, nil
}

// CompleteAnalysis marks the conversation analyzed and closes the gate
func (w *Workspace) CompleteAnalysis() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.isAnalyzing = false
	w.isAnalyzed = true
}

// FailAnalysis releases the gate so the user can retry
func (w *Workspace) FailAnalysis() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.isAnalyzing = false
}

// SelectNode records the clicked node and, when the node has children
// in the given map, adds it to the expansion set. Expansion is
// monotonic and idempotent; re-clicking never collapses.
func (w *Workspace) SelectNode(nodeID string, m valueobjects.UnderstandingMap) error {
	if _, ok := m.ParentOf(nodeID); !ok {
		return pkgerrors.NewNotFoundError("map node")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.selectedNodeID = nodeID
	if m.HasChildren(nodeID) {
		w.expanded[nodeID] = true
	}
	return nil
}

// ResetExpansion collapses the map back to the center. The selected
// node is intentionally kept; only a theme reset clears it.
func (w *Workspace) ResetExpansion() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expanded = map[string]bool{valueobjects.CenterID: true}
}

// SelectedNodeID returns the currently selected node id, if any
func (w *Workspace) SelectedNodeID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectedNodeID
}

// ExpandedNodes returns a copy of the expansion set
func (w *Workspace) ExpandedNodes() map[string]bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	expanded := make(map[string]bool, len(w.expanded))
	for id := range w.expanded {
		expanded[id] = true
	}
	return expanded
}
