// Package session keeps the rolling conversation window passed to the
// coordinator on each turn.
package session

import "github.com/hevoctl/hevoctl/pkg/llms"

// MaxHistory bounds the window to the most recent messages. Older
// entries fall off FIFO.
const MaxHistory = 20

// Session holds the conversation history for one chat session. It is
// not safe for concurrent use; turns are processed one at a time.
type Session struct {
	history []llms.Message
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// RecordTurn appends a completed user and assistant exchange. Callers
// record a turn only after the response was produced, so an aborted
// turn leaves no trace in the window.
func (s *Session) RecordTurn(userMessage, assistantReply string) {
	s.history = append(s.history,
		llms.Message{Role: "user", Content: userMessage},
		llms.Message{Role: "assistant", Content: assistantReply},
	)
	if len(s.history) > MaxHistory {
		s.history = s.history[len(s.history)-MaxHistory:]
	}
}

// History returns a copy of the current window, oldest first.
func (s *Session) History() []llms.Message {
	out := make([]llms.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len reports the number of messages in the window.
func (s *Session) Len() int {
	return len(s.history)
}

// Clear drops all history.
func (s *Session) Clear() {
	s.history = nil
}
