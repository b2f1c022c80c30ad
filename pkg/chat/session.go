// Package chat owns the in-memory conversation state for one screen
// session: the append-only message log, the unsent draft, and the
// single-flight gate that prevents concurrent sends.
package chat

import "strings"

// Origin identifies who authored a message.
type Origin int

const (
	OriginUser Origin = iota
	OriginAssistant
)

// String returns the role name for logging.
func (o Origin) String() string {
	if o == OriginUser {
		return "user"
	}
	return "assistant"
}

// Message is a single entry in the conversation log.
type Message struct {
	ID     int
	Text   string
	Origin Origin
}

// State is the session's send gate.
type State int

const (
	// StateIdle means no resolver call is outstanding; Submit is allowed.
	StateIdle State = iota
	// StateAwaitingReply means exactly one resolver call is outstanding.
	StateAwaitingReply
)

// Session is the live conversation state for one screen instance.
//
// The log is append-only and ids equal 1-based position, so the next id is
// always len(history)+1 at the moment of the append. That is safe because
// both append sites (Submit and ResolveReply) run on the Bubble Tea update
// loop and the awaiting gate keeps at most one resolver call in flight, so
// appends never interleave. If multiple concurrent sends are ever allowed,
// id assignment must move to an atomic counter.
type Session struct {
	history []Message
	draft   string
	state   State
}

// NewSession creates a session seeded with an assistant greeting (id=1).
func NewSession(greeting string) *Session {
	return &Session{
		history: []Message{{ID: 1, Text: greeting, Origin: OriginAssistant}},
	}
}

// Messages returns a copy of the ordered message log.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of messages in the log.
func (s *Session) Len() int {
	return len(s.history)
}

// Draft returns the current unsent input.
func (s *Session) Draft() string {
	return s.draft
}

// UpdateDraft replaces the unsent input. No validation.
func (s *Session) UpdateDraft(text string) {
	s.draft = text
}

// State returns the current send gate state.
func (s *Session) State() State {
	return s.state
}

// Awaiting reports whether a resolver call is outstanding.
func (s *Session) Awaiting() bool {
	return s.state == StateAwaitingReply
}

// CanSubmit reports whether a submit would currently be accepted.
// Consumers use this to disable the send action.
func (s *Session) CanSubmit() bool {
	return s.state == StateIdle && strings.TrimSpace(s.draft) != ""
}

// Submit appends a user message for the given draft, clears the unsent
// input and closes the send gate. It returns the accepted utterance, which
// the caller must hand to exactly one resolver invocation.
//
// A blank draft or a submit while a reply is outstanding is a no-op, not an
// error: callers gate the action on CanSubmit, but out-of-order
// re-invocation must stay safe.
func (s *Session) Submit(draft string) (string, bool) {
	text := strings.TrimSpace(draft)
	if text == "" || s.state != StateIdle {
		return "", false
	}

	s.history = append(s.history, Message{
		ID:     len(s.history) + 1,
		Text:   text,
		Origin: OriginUser,
	})
	s.draft = ""
	s.state = StateAwaitingReply
	return text, true
}

// ResolveReply appends the assistant reply and reopens the send gate.
// Called exactly once per accepted Submit; the resolver has already
// collapsed every failure into display text, so this never rejects.
func (s *Session) ResolveReply(text string) Message {
	msg := Message{
		ID:     len(s.history) + 1,
		Text:   text,
		Origin: OriginAssistant,
	}
	s.history = append(s.history, msg)
	s.state = StateIdle
	return msg
}
