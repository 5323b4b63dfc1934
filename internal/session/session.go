package session

import "github.com/google/uuid"

// State is the full conversation state for a single candidate session. It is
// a value: the host passes it into Advance and keeps the returned copy. One
// session is owned by exactly one user, so no locking is needed.
type State struct {
	ID                 string
	Stage              Stage
	Profile            Profile
	TechnicalQuestions []string
	CodingQuestions    []string
	JobRecommendations []string
	Ended              bool
}

// New creates an empty session positioned at the greeting stage.
func New() State {
	return State{
		ID:    uuid.NewString(),
		Stage: StageGreeting,
	}
}
