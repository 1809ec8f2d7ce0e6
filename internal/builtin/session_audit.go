package builtin

import (
	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/logger"
)

// SessionAudit is a SessionStart hook that records when sessions begin and
// how they were started.
type SessionAudit struct{}

func (s *SessionAudit) HookName() string    { return "session-audit" }
func (s *SessionAudit) TimeoutSeconds() int { return 5 }

func (s *SessionAudit) HandleSessionStart(in *event.SessionStartInput) (*event.Output, error) {
	logger.Info().
		Str("session", in.SessionID).
		Str("source", in.Source).
		Str("cwd", in.Cwd).
		Msg("Session started")
	return event.NewPassthrough(), nil
}
