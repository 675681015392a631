// Package moderation owns the status transitions of a comment.
//
//	active --(flag_threshold_reached | flag)--> flagged
//	any    --(hide)--> hidden
//	any    --(mark_spam)--> spam
//	any    --(restore)--> active
//
// Only flag_threshold_reached is raised by the system, every other event
// requires an administrator. Soft-deletion is not part of this machine.
package moderation

import (
	"errors"
	"fmt"

	"github.com/goto/discuss/domain"
)

type Event string

const (
	EventFlagThresholdReached Event = "flag_threshold_reached"
	EventFlag                 Event = "flag"
	EventHide                 Event = "hide"
	EventMarkSpam             Event = "mark_spam"
	EventRestore              Event = "restore"
)

var (
	ErrInvalidEvent      = errors.New("invalid moderation event")
	ErrInvalidTransition = errors.New("invalid moderation transition")
	ErrInvalidStatus     = errors.New("invalid comment status")
)

// AdminEvents lists the events an administrator can apply.
var AdminEvents = []Event{EventFlag, EventHide, EventMarkSpam, EventRestore}

func (e Event) String() string {
	return string(e)
}

func (e Event) IsValid() bool {
	switch e {
	case EventFlagThresholdReached, EventFlag, EventHide, EventMarkSpam, EventRestore:
		return true
	default:
		return false
	}
}

// RequiresAdmin reports whether the event can only be applied by an administrator.
func (e Event) RequiresAdmin() bool {
	return e != EventFlagThresholdReached
}

// Transition returns the status a comment in status from moves to when event
// is applied. changed is false when the event leaves the status as it is.
func Transition(from domain.CommentStatus, event Event) (to domain.CommentStatus, changed bool, err error) {
	if !from.IsValid() {
		return from, false, fmt.Errorf("%w: %q", ErrInvalidStatus, from)
	}

	switch event {
	case EventFlagThresholdReached:
		// the threshold only moves active comments, anything already under
		// moderation stays where an administrator put it
		if from == domain.CommentStatusActive {
			return domain.CommentStatusFlagged, true, nil
		}
		return from, false, nil
	case EventFlag:
		switch from {
		case domain.CommentStatusActive:
			return domain.CommentStatusFlagged, true, nil
		case domain.CommentStatusFlagged:
			return from, false, nil
		default:
			return from, false, fmt.Errorf("%w: cannot flag a comment in %q status", ErrInvalidTransition, from)
		}
	case EventHide:
		return moveTo(from, domain.CommentStatusHidden)
	case EventMarkSpam:
		return moveTo(from, domain.CommentStatusSpam)
	case EventRestore:
		return moveTo(from, domain.CommentStatusActive)
	default:
		return from, false, fmt.Errorf("%w: %q", ErrInvalidEvent, event)
	}
}

func moveTo(from, to domain.CommentStatus) (domain.CommentStatus, bool, error) {
	if from == to {
		return from, false, nil
	}
	return to, true, nil
}

// ReplyCountDelta returns how a parent's reply count changes when a live
// child moves between two statuses.
func ReplyCountDelta(from, to domain.CommentStatus) int {
	switch {
	case from == domain.CommentStatusActive && to != domain.CommentStatusActive:
		return -1
	case from != domain.CommentStatusActive && to == domain.CommentStatusActive:
		return 1
	default:
		return 0
	}
}
