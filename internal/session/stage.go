package session

// Stage is a named point in the fixed interview sequence. The progression is
// linear; Ended is reachable from any stage via an exit command.
type Stage int

const (
	StageGreeting Stage = iota
	StageAskName
	StageAskEmail
	StageAskPhone
	StageAskExperience
	StageAskPosition
	StageAskLocation
	StageAskTechStack
	StageQuestioning
	StageJobRecommendation
	StageDone
	StageEnded
)

var stageNames = map[Stage]string{
	StageGreeting:          "greeting",
	StageAskName:           "ask_name",
	StageAskEmail:          "ask_email",
	StageAskPhone:          "ask_phone",
	StageAskExperience:     "ask_experience",
	StageAskPosition:       "ask_position",
	StageAskLocation:       "ask_location",
	StageAskTechStack:      "ask_tech_stack",
	StageQuestioning:       "questioning",
	StageJobRecommendation: "job_recommendation",
	StageDone:              "done",
	StageEnded:             "ended",
}

func (s Stage) String() string {
	name, ok := stageNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// Terminal reports whether no further transitions can occur from this stage.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageEnded
}
