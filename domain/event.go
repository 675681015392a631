package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/goto/salt/audit"
)

// Event is an entry of a comment's activity history, read back from the
// audit log.
type Event struct {
	CommentID string                 `json:"comment_id" yaml:"comment_id"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
	Type      string                 `json:"type" yaml:"type"`
	Actor     string                 `json:"actor" yaml:"actor"`
	Data      map[string]interface{} `json:"data" yaml:"data"`
}

func (e *Event) FromAuditLog(l *audit.Log) error {
	if prefix := strings.Split(l.Action, ".")[0]; prefix != "comment" {
		return fmt.Errorf("unsupported event type %q", l.Action)
	}

	data, ok := l.Data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("invalid data type %T", l.Data)
	}

	// create and reply entries store the whole comment
	id, ok := data["comment_id"].(string)
	if !ok {
		if id, ok = data["id"].(string); !ok {
			return fmt.Errorf("comment id not found in %q event", l.Action)
		}
	}

	e.CommentID = id
	e.Timestamp = l.Timestamp
	e.Type = l.Action
	e.Actor = l.Actor
	e.Data = data
	return nil
}

type ListEventsFilter struct {
	CommentID string   `mapstructure:"comment_id" validate:"required"`
	Types     []string `mapstructure:"types"`
	Size      int      `mapstructure:"size" validate:"omitempty,min=1"`
}
