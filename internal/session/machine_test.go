package session

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubQuestions struct {
	technical      []string
	coding         []string
	technicalCalls int
	codingCalls    int
	lastStack      string
}

func (s *stubQuestions) TechnicalQuestions(_ context.Context, techStack string) []string {
	s.technicalCalls++
	s.lastStack = techStack
	return s.technical
}

func (s *stubQuestions) CodingQuestions(_ context.Context, techStack string) []string {
	s.codingCalls++
	s.lastStack = techStack
	return s.coding
}

type stubRecommender struct {
	recs         []string
	calls        int
	lastPosition string
	lastLocation string
}

func (s *stubRecommender) Recommend(position, location string) []string {
	s.calls++
	s.lastPosition = position
	s.lastLocation = location
	return s.recs
}

func newTestMachine() (*Machine, *stubQuestions, *stubRecommender) {
	questions := &stubQuestions{
		technical: []string{"What is a goroutine?"},
		coding:    []string{"Implement an LRU cache."},
	}
	recommender := &stubRecommender{
		recs: []string{"- Listing One", "- Listing Two", "- Listing Three", "- Catch All"},
	}
	return NewMachine(questions, recommender, zap.NewNop()), questions, recommender
}

func TestAdvanceLinearProgression(t *testing.T) {
	cases := []struct {
		stage Stage
		next  Stage
		field func(Profile) string
	}{
		{StageGreeting, StageAskName, nil},
		{StageAskName, StageAskEmail, func(p Profile) string { return p.FullName }},
		{StageAskEmail, StageAskPhone, func(p Profile) string { return p.Email }},
		{StageAskPhone, StageAskExperience, func(p Profile) string { return p.Phone }},
		{StageAskExperience, StageAskPosition, func(p Profile) string { return p.Experience }},
		{StageAskPosition, StageAskLocation, func(p Profile) string { return p.Position }},
		{StageAskLocation, StageAskTechStack, func(p Profile) string { return p.Location }},
		{StageAskTechStack, StageQuestioning, func(p Profile) string { return p.TechStack }},
		{StageQuestioning, StageJobRecommendation, nil},
		{StageJobRecommendation, StageDone, nil},
	}

	// Arbitrary inputs, including empty: no stage validates input format.
	inputs := []string{"some answer", "", "   ", "línea ütf-8", "123-456"}

	for _, tc := range cases {
		for _, input := range inputs {
			machine, _, _ := newTestMachine()
			state := New()
			state.Stage = tc.stage

			next, reply := machine.Advance(context.Background(), state, input)

			if next.Stage != tc.next {
				t.Fatalf("stage %s with input %q: expected next stage %s, got %s", tc.stage, input, tc.next, next.Stage)
			}

			if reply == "" {
				t.Fatalf("stage %s: expected a non-empty reply", tc.stage)
			}

			if tc.field != nil {
				if got := tc.field(next.Profile); got != input {
					t.Fatalf("stage %s: expected field value %q, got %q", tc.stage, input, got)
				}
			}
		}
	}
}

func TestExitCommandEndsSessionAtAnyStage(t *testing.T) {
	stages := []Stage{
		StageGreeting, StageAskName, StageAskEmail, StageAskPhone,
		StageAskExperience, StageAskPosition, StageAskLocation,
		StageAskTechStack, StageQuestioning, StageJobRecommendation,
	}
	commands := []string{"exit", "Exit", "QUIT", "BYE", " end "}

	for _, stage := range stages {
		for _, command := range commands {
			machine, questions, _ := newTestMachine()
			state := New()
			state.Stage = stage

			next, _ := machine.Advance(context.Background(), state, command)

			if !next.Ended {
				t.Fatalf("stage %s with %q: expected session to end", stage, command)
			}

			if next.Stage != StageEnded {
				t.Fatalf("stage %s with %q: expected stage ended, got %s", stage, command, next.Stage)
			}

			if len(next.Profile.Fields()) != len(state.Profile.Fields()) {
				t.Fatalf("stage %s with %q: exit must not write a profile field", stage, command)
			}

			if questions.technicalCalls != 0 || questions.codingCalls != 0 {
				t.Fatalf("stage %s with %q: exit must not trigger generation", stage, command)
			}
		}
	}
}

func TestExitCommandRequiresExactMatch(t *testing.T) {
	machine, _, _ := newTestMachine()
	state := New()
	state.Stage = StageAskName

	next, _ := machine.Advance(context.Background(), state, "please exit now")

	if next.Ended {
		t.Fatal("partial match must not end the session")
	}

	if next.Profile.FullName != "please exit now" {
		t.Fatalf("input should have been stored as the name, got %q", next.Profile.FullName)
	}
}

func TestTechStackStageGeneratesQuestions(t *testing.T) {
	machine, questions, _ := newTestMachine()
	state := New()
	state.Stage = StageAskTechStack

	next, reply := machine.Advance(context.Background(), state, "Python, FastAPI")

	if questions.technicalCalls != 1 || questions.codingCalls != 1 {
		t.Fatalf("expected one technical and one coding call, got %d and %d",
			questions.technicalCalls, questions.codingCalls)
	}

	if questions.lastStack != "Python, FastAPI" {
		t.Fatalf("unexpected tech stack passed to generation: %q", questions.lastStack)
	}

	if len(next.TechnicalQuestions) == 0 || len(next.CodingQuestions) == 0 {
		t.Fatal("expected both question sequences to be stored")
	}

	if !strings.Contains(reply, "What is a goroutine?") {
		t.Fatalf("expected technical questions embedded in reply, got %q", reply)
	}

	if !strings.Contains(reply, "Implement an LRU cache.") {
		t.Fatalf("expected coding questions embedded in reply, got %q", reply)
	}
}

func TestTechStackStageStoresErrorMarkerOnFailure(t *testing.T) {
	questions := &stubQuestions{
		technical: []string{"(!) technical question generation failed: quota exceeded"},
		coding:    []string{"(!) coding question generation failed: quota exceeded"},
	}
	machine := NewMachine(questions, &stubRecommender{recs: []string{"- Listing"}}, zap.NewNop())

	state := New()
	state.Stage = StageAskTechStack

	next, _ := machine.Advance(context.Background(), state, "Rust")

	if len(next.TechnicalQuestions) == 0 || len(next.CodingQuestions) == 0 {
		t.Fatal("question sequences must be non-empty even when generation fails")
	}

	if next.Stage != StageQuestioning {
		t.Fatalf("generation failure must not block progression, got stage %s", next.Stage)
	}
}

func TestQuestioningStageRecommendsJobs(t *testing.T) {
	machine, _, recommender := newTestMachine()
	state := New()
	state.Stage = StageQuestioning
	state.Profile.Position = "Backend Engineer"
	state.Profile.Location = "Austin"

	next, reply := machine.Advance(context.Background(), state, "anything")

	if recommender.calls != 1 {
		t.Fatalf("expected one recommendation call, got %d", recommender.calls)
	}

	if recommender.lastPosition != "Backend Engineer" || recommender.lastLocation != "Austin" {
		t.Fatalf("recommendation must use stored position and location, got %q / %q",
			recommender.lastPosition, recommender.lastLocation)
	}

	if next.Stage != StageJobRecommendation {
		t.Fatalf("expected stage job_recommendation, got %s", next.Stage)
	}

	if len(next.JobRecommendations) != 4 {
		t.Fatalf("expected stored recommendations, got %d", len(next.JobRecommendations))
	}

	if !strings.Contains(reply, "- Listing One") {
		t.Fatalf("expected recommendations embedded in reply, got %q", reply)
	}
}

func TestJobRecommendationStageCloses(t *testing.T) {
	machine, _, _ := newTestMachine()
	state := New()
	state.Stage = StageJobRecommendation

	next, reply := machine.Advance(context.Background(), state, "thanks")

	if next.Stage != StageDone {
		t.Fatalf("expected stage done, got %s", next.Stage)
	}

	if !next.Ended {
		t.Fatal("reaching done must end the session")
	}

	if reply == "" {
		t.Fatal("expected a closing message")
	}
}

func TestPostTerminalInputYieldsClarification(t *testing.T) {
	for _, stage := range []Stage{StageDone, StageEnded} {
		machine, questions, recommender := newTestMachine()
		state := New()
		state.Stage = stage
		state.Ended = true
		state.Profile.FullName = "Jane Doe"

		next, reply := machine.Advance(context.Background(), state, "hello again")

		if next.Stage != stage {
			t.Fatalf("post-terminal input must not change stage, got %s", next.Stage)
		}

		if next.Profile != state.Profile {
			t.Fatal("post-terminal input must not mutate the profile")
		}

		if reply != replyClarify {
			t.Fatalf("expected the clarification reply, got %q", reply)
		}

		if questions.technicalCalls != 0 || recommender.calls != 0 {
			t.Fatal("post-terminal input must not trigger side effects")
		}
	}
}

func TestFullInterviewScenario(t *testing.T) {
	machine, questions, recommender := newTestMachine()
	state := New()

	inputs := []string{
		"hi", "Jane Doe", "jane@x.com", "555-1234",
		"3 years", "Backend Engineer", "Austin", "Python, FastAPI",
	}

	for _, input := range inputs {
		state, _ = machine.Advance(context.Background(), state, input)
	}

	if state.Stage != StageQuestioning {
		t.Fatalf("expected stage questioning after scenario, got %s", state.Stage)
	}

	expected := Profile{
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Phone:      "555-1234",
		Experience: "3 years",
		Position:   "Backend Engineer",
		Location:   "Austin",
		TechStack:  "Python, FastAPI",
	}

	if state.Profile != expected {
		t.Fatalf("unexpected profile: %+v", state.Profile)
	}

	if questions.technicalCalls+questions.codingCalls != 2 {
		t.Fatalf("expected exactly two generation calls, got %d",
			questions.technicalCalls+questions.codingCalls)
	}

	if recommender.calls != 0 {
		t.Fatalf("recommendations must not run before questioning, got %d calls", recommender.calls)
	}
}

func TestQuitAsFirstInput(t *testing.T) {
	machine, _, _ := newTestMachine()
	state := New()

	next, _ := machine.Advance(context.Background(), state, "quit")

	if next.Stage != StageEnded || !next.Ended {
		t.Fatalf("expected immediate end, got stage %s", next.Stage)
	}

	if len(next.Profile.Fields()) != 0 {
		t.Fatalf("expected empty profile, got %+v", next.Profile.Fields())
	}
}
