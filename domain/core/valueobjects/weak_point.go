package valueobjects

// StudyStatus tracks the user's own triage of a weak point
type StudyStatus string

const (
	StudyTodo  StudyStatus = "todo"
	StudyDoing StudyStatus = "doing"
	StudyDone  StudyStatus = "done"
)

// IsValid reports whether the status is a known triage state
func (s StudyStatus) IsValid() bool {
	switch s {
	case StudyTodo, StudyDoing, StudyDone:
		return true
	}
	return false
}

// AiLevel is the analysis-assigned severity of a weak point
type AiLevel string

const (
	AiLevelCritical AiLevel = "critical"
	AiLevelWeak     AiLevel = "weak"
	AiLevelMinor    AiLevel = "minor"
	AiLevelNone     AiLevel = "-"
)

// IsValid reports whether the level is a known severity
func (l AiLevel) IsValid() bool {
	switch l {
	case AiLevelCritical, AiLevelWeak, AiLevelMinor, AiLevelNone:
		return true
	}
	return false
}

// WeakPoint is a concept the analysis flagged as insufficiently
// explained. StudyStatus is the only field that changes after creation,
// and only through the user's triage action.
type WeakPoint struct {
	ID           string        `json:"id"`
	Concept      string        `json:"concept"`
	Status       ConceptStatus `json:"status"`
	Reason       string        `json:"reason"`
	RelatedTurns []int         `json:"relatedTurns"`
	Suggestion   string        `json:"suggestion"`
	AiLevel      AiLevel       `json:"aiLevel"`
	StudyStatus  StudyStatus   `json:"studyStatus"`
}

// Clone returns a copy of the weak point with its own turn slice
func (w WeakPoint) Clone() WeakPoint {
	turns := make([]int, len(w.RelatedTurns))
	copy(turns, w.RelatedTurns)
	w.RelatedTurns = turns
	return w
}
