package session

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// QuestionSource produces interview questions for a declared tech stack. The
// implementation must always return a non-empty list: generation failures are
// substituted with a visible error marker, never surfaced as an error here.
type QuestionSource interface {
	TechnicalQuestions(ctx context.Context, techStack string) []string
	CodingQuestions(ctx context.Context, techStack string) []string
}

// Recommender returns formatted job listings for a position and location.
// It is deterministic and never fails.
type Recommender interface {
	Recommend(position, location string) []string
}

// Machine drives the interview one turn at a time. It decides what to ask
// next, writes profile fields, and invokes question generation and job
// recommendation at the stages that need them.
type Machine struct {
	questions QuestionSource
	jobs      Recommender
	logger    *zap.Logger
}

func NewMachine(questions QuestionSource, jobs Recommender, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Machine{
		questions: questions,
		jobs:      jobs,
		logger:    logger,
	}
}

// exitCommands end the session from any stage. Matched against the
// lower-cased trimmed input as a whole.
var exitCommands = map[string]struct{}{
	"exit": {},
	"quit": {},
	"bye":  {},
	"end":  {},
}

const (
	replyGreeting = "Welcome! I'm your virtual assistant from Hiring Partner.\n\n" +
		"Can I have your full name?"
	replyAskEmail      = "What's your email address?"
	replyAskPhone      = "Could you share your phone number?"
	replyAskExperience = "How many years of experience do you have?"
	replyAskPosition   = "What position(s) are you applying for?"
	replyAskLocation   = "Where are you currently located?"
	replyAskTechStack  = "Please list your tech stack (e.g. Python, React, MongoDB)."
	replyClosing       = "That's all I need for now. Thank you for your time! " +
		"You'll hear from us soon."
	replyGoodbye = "Thank you for chatting with Hiring Partner! " +
		"We'll be in touch shortly. Goodbye!"
	replyClarify = "Hmm, I didn't quite get that. Could you please rephrase?"
)

// Advance consumes one user input and returns the updated state together with
// the assistant reply. Input is accepted as-is at every stage: format
// validation is deliberately left to a human reviewer. The exit-command check
// runs before any stage logic and overrides normal progression.
func (m *Machine) Advance(ctx context.Context, state State, input string) (State, string) {
	if state.Stage.Terminal() {
		return state, replyClarify
	}

	if _, ok := exitCommands[strings.ToLower(strings.TrimSpace(input))]; ok {
		from := state.Stage
		state.Stage = StageEnded
		state.Ended = true
		m.logTransition(state, from)
		return state, replyGoodbye
	}

	from := state.Stage
	var reply string

	switch state.Stage {
	case StageGreeting:
		state.Stage = StageAskName
		reply = replyGreeting

	case StageAskName:
		state.Profile.FullName = input
		state.Stage = StageAskEmail
		reply = replyAskEmail

	case StageAskEmail:
		state.Profile.Email = input
		state.Stage = StageAskPhone
		reply = replyAskPhone

	case StageAskPhone:
		state.Profile.Phone = input
		state.Stage = StageAskExperience
		reply = replyAskExperience

	case StageAskExperience:
		state.Profile.Experience = input
		state.Stage = StageAskPosition
		reply = replyAskPosition

	case StageAskPosition:
		state.Profile.Position = input
		state.Stage = StageAskLocation
		reply = replyAskLocation

	case StageAskLocation:
		state.Profile.Location = input
		state.Stage = StageAskTechStack
		reply = replyAskTechStack

	case StageAskTechStack:
		state.Profile.TechStack = input
		state.Stage = StageQuestioning

		technical := m.questions.TechnicalQuestions(ctx, input)
		coding := m.questions.CodingQuestions(ctx, input)
		state.TechnicalQuestions = technical
		state.CodingQuestions = coding

		reply = fmt.Sprintf(
			"Here are some technical questions for your stack:\n\n%s\n\n"+
				"And a few coding questions:\n\n%s",
			strings.Join(technical, "\n"),
			strings.Join(coding, "\n"),
		)

	case StageQuestioning:
		state.Stage = StageJobRecommendation

		recs := m.jobs.Recommend(state.Profile.Position, state.Profile.Location)
		state.JobRecommendations = recs

		reply = "Based on your profile, here are some job recommendations:\n\n" +
			strings.Join(recs, "\n\n")

	case StageJobRecommendation:
		state.Stage = StageDone
		state.Ended = true
		reply = replyClosing

	default:
		return state, replyClarify
	}

	m.logTransition(state, from)

	return state, reply
}

func (m *Machine) logTransition(state State, from Stage) {
	m.logger.Debug("stage transition",
		zap.String("session_id", state.ID),
		zap.Stringer("from", from),
		zap.Stringer("to", state.Stage),
	)
}
