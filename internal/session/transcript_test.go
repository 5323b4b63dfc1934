package session

import "testing"

func TestTranscriptAppendsInOrder(t *testing.T) {
	transcript := &Transcript{}
	transcript.Append(SpeakerUser, "hi")
	transcript.Append(SpeakerAssistant, "hello")
	transcript.Append(SpeakerUser, "Jane Doe")

	turns := transcript.Turns()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}

	if turns[0].Speaker != SpeakerUser || turns[0].Text != "hi" {
		t.Fatalf("unexpected first turn: %+v", turns[0])
	}

	if turns[1].Speaker != SpeakerAssistant || turns[1].Text != "hello" {
		t.Fatalf("unexpected second turn: %+v", turns[1])
	}
}

func TestTranscriptTurnsReturnsCopy(t *testing.T) {
	transcript := &Transcript{}
	transcript.Append(SpeakerUser, "hi")

	turns := transcript.Turns()
	turns[0].Text = "mutated"

	if got := transcript.Turns()[0].Text; got != "hi" {
		t.Fatalf("transcript must not be mutable through Turns, got %q", got)
	}
}

func TestProfileFieldsOrderAndPresence(t *testing.T) {
	p := Profile{FullName: "Jane Doe", Position: "Backend Engineer"}

	fields := p.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 collected fields, got %d", len(fields))
	}

	if fields[0].Name != "Full Name" || fields[1].Name != "Position" {
		t.Fatalf("fields must keep collection order, got %+v", fields)
	}
}
