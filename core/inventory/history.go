package inventory

import (
	"errors"
	"time"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/oklog/ulid/v2"
)

// Event is one completed action of a session.
type Event struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Op       string    `json:"op"`
	AssetIDs []string  `json:"asset_ids"`
	Message  string    `json:"message"`
}

// History returns the completed actions of the session, oldest first.
func (s *Session) History() []Event {
	out := make([]Event, len(s.history))
	copy(out, s.history)
	return out
}

// LastMessage is the status line of the most recent action.
func (s *Session) LastMessage() string {
	if len(s.history) == 0 {
		return ""
	}
	return s.history[len(s.history)-1].Message
}

func (s *Session) record(op string, ids []string, msg string) {
	s.history = append(s.history, Event{
		ID:       ulid.Make().String(),
		Time:     time.Now(),
		Op:       op,
		AssetIDs: ids,
		Message:  msg,
	})
	s.logger.Info(msg, "op", op, "session", s.id)
}

func isDuplicate(err error) bool {
	return errors.Is(err, asset.ErrDuplicateKey)
}
