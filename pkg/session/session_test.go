package session

import (
	"fmt"
	"testing"
)

func TestRecordTurnTrimsOldest(t *testing.T) {
	s := New()
	for i := 0; i < 15; i++ {
		s.RecordTurn(fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i))
	}

	if s.Len() != MaxHistory {
		t.Fatalf("Len = %d, want %d", s.Len(), MaxHistory)
	}

	history := s.History()
	if history[0].Content != "question 5" {
		t.Errorf("oldest entry = %q, want question 5", history[0].Content)
	}
	if history[len(history)-1].Content != "answer 14" {
		t.Errorf("newest entry = %q, want answer 14", history[len(history)-1].Content)
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Errorf("role order wrong: %s, %s", history[0].Role, history[1].Role)
	}
}

func TestHistoryIsCopy(t *testing.T) {
	s := New()
	s.RecordTurn("hello", "hi")

	history := s.History()
	history[0].Content = "mutated"

	if s.History()[0].Content != "hello" {
		t.Error("History exposed internal state")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.RecordTurn("hello", "hi")
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
}
