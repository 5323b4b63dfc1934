package session

// Speaker identifies the author of a transcript turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one utterance in the conversation.
type Turn struct {
	Speaker Speaker
	Text    string
}

// Transcript is the append-only ordered log of turns. Turns are never
// mutated or reordered once appended.
type Transcript struct {
	turns []Turn
}

func (t *Transcript) Append(speaker Speaker, text string) {
	t.turns = append(t.turns, Turn{Speaker: speaker, Text: text})
}

func (t *Transcript) Len() int {
	return len(t.turns)
}

// Turns returns a copy of the recorded turns.
func (t *Transcript) Turns() []Turn {
	turns := make([]Turn, len(t.turns))
	copy(turns, t.turns)
	return turns
}
